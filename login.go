package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("fintui").
				Description("Log in to your finance account"),

			huh.NewInput().
				Key("username").
				Title("Username").
				Validate(required("username")),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(required("password")),
		),
	)
}

// showLogin replaces the screen with the login form.
func (m *model) showLogin(status string) tea.Cmd {
	m.closeForms()
	m.loginForm = newLoginForm()
	m.history.SetFocus(false)
	m.sessionState = loginState
	m.setStatus(status)

	return m.loginForm.Init()
}

// login exchanges credentials for a token.
func (m model) login(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if client == nil {
			return loginErrMsg{err: errors.New("no backend configured")}
		}

		ctx := context.Background()
		token, err := client.Login(ctx, username, password)
		if err != nil {
			return loginErrMsg{err: err}
		}

		log.Debug("logged in", "username", username)
		return loginMsg{token: token.AccessToken}
	}
}

func updateLoginForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State == huh.StateCompleted {
		username := strings.TrimSpace(m.loginForm.GetString("username"))
		password := m.loginForm.GetString("password")

		m.loginForm = nil
		m.sessionState = loading
		return m, tea.Batch(m.login(username, password), m.loadingSpinner.Tick)
	}

	return m, cmd
}
