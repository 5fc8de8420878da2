package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// Token is a bearer token that overrides the stored session
	Token string `toml:"token,omitempty"`
	// BaseURL is the origin of the finance backend
	BaseURL string `toml:"base_url"`
	// Currency is the ISO code amounts are displayed in
	Currency string `toml:"currency"`
	// AnthropicAPIKey enables category suggestions
	AnthropicAPIKey string `toml:"anthropic_api_key,omitempty"`
	// Colors overrides the theme
	Colors Colors `toml:"colors"`
}

// Colors holds the configurable theme colors. Empty values use the defaults.
type Colors struct {
	Primary       string `toml:"primary,omitempty" mapstructure:"primary"`
	Error         string `toml:"error,omitempty" mapstructure:"error"`
	Success       string `toml:"success,omitempty" mapstructure:"success"`
	Muted         string `toml:"muted,omitempty" mapstructure:"muted"`
	Income        string `toml:"income,omitempty" mapstructure:"income"`
	Expense       string `toml:"expense,omitempty" mapstructure:"expense"`
	Border        string `toml:"border,omitempty" mapstructure:"border"`
	Text          string `toml:"text,omitempty" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text,omitempty" mapstructure:"secondary_text"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary string) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(primary))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// SetConfig sets the configuration data for the view. sessionPath and
// configPath describe where the session and config were loaded from.
func (m *Model) SetConfig(config Config, sessionPath, configPath string) {
	rows := []table.Row{
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"Base URL", config.BaseURL, "Finance backend origin"},
		{"Currency", config.Currency, "Currency amounts are displayed in"},
		{"Token", maskSensitiveValue(config.Token), "Bearer token overriding the stored session"},
		{"Anthropic API Key", maskSensitiveValue(config.AnthropicAPIKey), "Enables category suggestions"},
		{"Session File", orDefault(sessionPath, "(none)"), "Where the login session is stored"},
		{"Config File", orDefault(configPath, "(none)"), "Configuration file in use"},
	}

	m.configTable.SetRows(rows)
}

// Rows returns the settings currently shown.
func (m Model) Rows() []table.Row {
	return m.configTable.Rows()
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
