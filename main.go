package main

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/budget"
	"github.com/Rshep3087/fintui/config"
	"github.com/Rshep3087/fintui/dashboard"
	"github.com/Rshep3087/fintui/history"
	"github.com/Rshep3087/fintui/home"
	"github.com/Rshep3087/fintui/session"
)

func main() {
	Execute()
}

type model struct {
	// loadingSpinner is a spinner model for the loading state
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	// sessionState is the current state of the session
	sessionState sessionState
	loadingState loadingState

	// vm owns the selected period and the visible section
	vm *dashboard.ViewModel

	home       home.Model
	history    history.Model
	budget     budget.Model
	configView config.Model

	loginForm       *huh.Form
	transactionForm *huh.Form
	deleteForm      *huh.Form
	budgetForm      *huh.Form
	periodForm      *huh.Form

	// draft is bound to the fields of transactionForm and kept until the
	// backend accepts it
	draft *dashboard.Draft
	// budgetInput is the amount last sent, offered again if the save fails
	budgetInput string
	// period is bound to the fields of periodForm
	period *periodSelection
	// pendingDelete is the row awaiting delete confirmation
	pendingDelete dashboard.LedgerRow

	actions       *dashboard.Dispatcher[actionHandler]
	aiRecommender *AIRecommender

	// homeLoaded is set once a Home refresh has succeeded
	homeLoaded bool
	user       *api.User
	claims     session.Claims

	statusMsg   string
	statusIsErr bool
	errorMsg    string

	client   *api.Client
	backend  dashboard.Backend
	store    session.Store
	currency string
	now      func() time.Time
}

// modelDeps are the collaborators the TUI is built from.
type modelDeps struct {
	config      config.Config
	configPath  string
	client      *api.Client
	backend     dashboard.Backend
	store       session.Store
	sessionPath string
	ai          AIProvider
	now         func() time.Time
}

func newModel(d modelDeps) model {
	if d.now == nil {
		d.now = time.Now
	}
	if d.backend == nil && d.client != nil {
		d.backend = d.client
	}
	if d.store == nil {
		d.store = &session.MemoryStore{}
	}

	currency := d.config.Currency
	if currency == "" {
		currency = dashboard.DefaultCurrency
	}

	theme := newTheme(d.config.Colors)

	m := model{
		keys:   initializeKeyMap(),
		help:   createHelpModel(theme),
		styles: createStyles(theme),
		theme:  theme,
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
		sessionState:  loading,
		loadingState:  newLoadingState(homeKey, profileKey),
		vm:            dashboard.NewCurrent(d.now()),
		home:          home.New(home.WithStyles(theme.homeStyles()), home.WithCurrency(currency)),
		history:       history.New(theme.historyColors()),
		budget:        budget.New(theme.budgetColors()),
		configView:    config.New(string(theme.Primary)),
		actions:       newActionTable(),
		aiRecommender: NewAIRecommender(d.ai),
		client:        d.client,
		backend:       d.backend,
		store:         d.store,
		currency:      currency,
		now:           d.now,
	}

	m.history.SetCurrency(currency)
	m.budget.SetCurrency(currency)
	m.configView.SetConfig(d.config, d.sessionPath, d.configPath)

	token := ""
	if d.client != nil {
		token = d.client.Token()
	}
	if !session.Usable(token, d.now()) {
		m.showLogin("")
		return m
	}

	m.claims, _ = session.ParseClaims(token)
	return m
}

func (m model) Init() tea.Cmd {
	if m.sessionState == loginState {
		return m.loginForm.Init()
	}

	return tea.Batch(
		m.fetchHome(m.vm.Period()),
		m.fetchProfile,
		m.loadingSpinner.Tick,
	)
}

// rootAction starts the TUI.
func rootAction(ctx context.Context, d modelDeps) error {
	// the alt screen owns the terminal, so logs go to a file or nowhere
	if d.config.Debug {
		f, err := tea.LogToFile("fintui.log", "fintui")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(d), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

func (m model) checkIfLoading() sessionState {
	if loaded, _ := m.loadingState.allLoaded(); !loaded {
		return loading
	}

	return sectionState(m.vm.Section())
}

// sectionState maps a dashboard section to the state that shows it.
func sectionState(s dashboard.Section) sessionState {
	switch s {
	case dashboard.History:
		return historyState
	case dashboard.Budget:
		return budgetState
	}
	return homeState
}
