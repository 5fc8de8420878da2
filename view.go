package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/fintui/dashboard"
)

var sections = []dashboard.Section{dashboard.Home, dashboard.History, dashboard.Budget}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case loginState:
		b.WriteString(m.loginForm.View())
		b.WriteString(m.statusView())
		return m.styles.docStyle.Render(b.String())

	case errorState:
		b.WriteString(m.styles.errorStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
		b.WriteString(m.styles.statusStyle.Render("press r to retry or q to quit"))
		return m.styles.docStyle.Render(b.String())

	case loading:
		b.WriteString(fmt.Sprintf("%s Loading data...", m.loadingSpinner.View()))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.sessionState {
	case homeState:
		b.WriteString(m.home.View())
	case historyState:
		b.WriteString(m.history.View())
	case budgetState:
		b.WriteString(m.budget.View())
	case insertTransaction:
		b.WriteString(m.transactionForm.View())
	case confirmDelete:
		b.WriteString(m.deleteForm.View())
	case editBudget:
		b.WriteString(m.budgetForm.View())
	case selectPeriod:
		b.WriteString(m.periodForm.View())
	case profileState:
		b.WriteString(m.profileView())
	case configView:
		b.WriteString(m.configView.View())
	}

	b.WriteString(m.statusView())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	if m.sessionState == loginState {
		return m.styles.titleStyle.Render("fintui | login")
	}

	return m.styles.titleStyle.Render(
		fmt.Sprintf("fintui | %s | %s", m.sessionState, m.vm.Period()),
	)
}

func (m model) renderTabs() string {
	caser := cases.Title(language.English)

	tabs := make([]string, len(sections))
	for i, s := range sections {
		style := m.styles.tabStyle
		if s == m.vm.Section() {
			style = m.styles.activeTabStyle
		}
		tabs[i] = style.Render(caser.String(s.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) statusView() string {
	if m.statusMsg == "" {
		return ""
	}

	style := m.styles.statusStyle
	if m.statusIsErr {
		style = m.styles.errorStyle
	}
	return "\n\n" + style.Render(m.statusMsg)
}

func (m model) profileView() string {
	var b strings.Builder

	b.WriteString(m.styles.titleStyle.Render("Profile"))
	b.WriteString("\n\n")

	if m.user == nil {
		b.WriteString("Loading profile...")
		return m.styles.panelStyle.Render(b.String())
	}

	fmt.Fprintf(&b, "Username: %s\n", m.user.Username)
	fmt.Fprintf(&b, "Email:    %s\n", m.user.Email)

	if m.claims.Subject != "" {
		fmt.Fprintf(&b, "Subject:  %s\n", m.claims.Subject)
	}
	if !m.claims.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "Session:  expires %s", m.claims.ExpiresAt.Local().Format(time.DateTime))
	}

	return m.styles.panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
