package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepChoosingMode step = iota
	stepSelectingRole
	stepEnteringEmail
	stepEnteringPassword
	stepEnteringPhone
	stepWorking
	stepDashboard
	stepViewing
)

var (
	modes = []string{"Sign in", "Try the demo"}
	roles = []string{"landlord", "tenant", "seller", "buyer"}
)

type model struct {
	api          *apiClient
	step         step
	cursor       int
	demo         bool
	role         string
	email        string
	currentInput string
	session      sessionInfo
	board        dashboard
	page         string
	message      string
	quitting     bool
}

type sessionMsg struct {
	session sessionInfo
	board   dashboard
}
type pageMsg string
type loggedOutMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(api *apiClient) model {
	return model{api: api, step: stepChoosingMode}
}

func (m model) Init() tea.Cmd {
	return nil
}

func signIn(api *apiClient, email, password, role string) tea.Cmd {
	return func() tea.Msg {
		s, err := api.login(email, password, role)
		if err != nil {
			return errMsg{err}
		}
		d, err := api.dashboard()
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: s, board: d}
	}
}

func startDemo(api *apiClient, phone, role string) tea.Cmd {
	return func() tea.Msg {
		s, err := api.demo(phone, role)
		if err != nil {
			return errMsg{err}
		}
		d, err := api.dashboard()
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: s, board: d}
	}
}

func logout(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		if err := api.logout(); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}

func loadProperties(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		list, err := api.properties()
		if err != nil {
			return errMsg{err}
		}
		return pageMsg(renderProperties(list))
	}
}

func loadContracts(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		list, err := api.contracts()
		if err != nil {
			return errMsg{err}
		}
		return pageMsg(renderContracts(list))
	}
}

func loadAnalytics(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		s, err := api.analytics()
		if err != nil {
			return errMsg{err}
		}
		return pageMsg(renderSummary(s))
	}
}

func (m model) textEntry() bool {
	return m.step == stepEnteringEmail || m.step == stepEnteringPassword || m.step == stepEnteringPhone
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); {
		case key == "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case key == "enter":
			return m.submit()

		case key == "backspace" && m.textEntry():
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case m.textEntry():
			if msg.Type == tea.KeyRunes {
				m.currentInput += string(msg.Runes)
			}

		case key == "q":
			m.quitting = true
			return m, tea.Quit

		case key == "up" || key == "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case key == "down" || key == "j":
			if m.cursor < m.options()-1 {
				m.cursor++
			}

		case key == "esc" || key == "b":
			if m.step == stepViewing {
				m.step = stepDashboard
				m.page = ""
			}

		case m.step == stepDashboard:
			return m.dashboardKey(key)
		}

	case sessionMsg:
		m.session = msg.session
		m.board = msg.board
		m.step = stepDashboard
		m.message = ""

	case pageMsg:
		m.page = string(msg)
		m.step = stepViewing
		m.message = ""

	case loggedOutMsg:
		m = initialModel(m.api)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		if m.session.Token == "" {
			m.step = stepChoosingMode
			m.cursor = 0
		} else {
			m.step = stepDashboard
		}
	}

	return m, nil
}

func (m model) options() int {
	switch m.step {
	case stepChoosingMode:
		return len(modes)
	case stepSelectingRole:
		return len(roles)
	}
	return 0
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepChoosingMode:
		m.demo = m.cursor == 1
		m.cursor = 0
		m.step = stepSelectingRole
		m.message = ""

	case stepSelectingRole:
		m.role = roles[m.cursor]
		if m.demo {
			m.step = stepEnteringPhone
		} else {
			m.step = stepEnteringEmail
		}

	case stepEnteringEmail:
		if m.currentInput != "" {
			m.email = m.currentInput
			m.currentInput = ""
			m.step = stepEnteringPassword
		}

	case stepEnteringPassword:
		if m.currentInput != "" {
			password := m.currentInput
			m.currentInput = ""
			m.step = stepWorking
			m.message = "Signing in..."
			return m, signIn(m.api, m.email, password, m.role)
		}

	case stepEnteringPhone:
		if m.currentInput != "" {
			phone := m.currentInput
			m.currentInput = ""
			m.step = stepWorking
			m.message = "Starting demo..."
			return m, startDemo(m.api, phone, m.role)
		}
	}
	return m, nil
}

func (m model) dashboardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "p":
		return m, loadProperties(m.api)
	case "c":
		return m, loadContracts(m.api)
	case "a":
		return m, loadAnalytics(m.api)
	case "l":
		m.step = stepWorking
		m.message = "Signing out..."
		return m, logout(m.api)
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Realty Console") + "\n\n")

	switch m.step {
	case stepChoosingMode:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("How do you want to continue?") + "\n\n")
		writeMenu(&s, modes, m.cursor)
		s.WriteString("\nUse ↑/↓, Enter to select, q to quit\n")

	case stepSelectingRole:
		s.WriteString(promptStyle.Render("Select your role:") + "\n\n")
		writeMenu(&s, roles, m.cursor)

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Email:") + "\n")
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:") + "\n")
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPhone:
		s.WriteString(promptStyle.Render("Phone number:") + "\n")
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepWorking:
		s.WriteString(m.message + "\n")

	case stepDashboard:
		s.WriteString(renderDashboard(m.board))
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}
		s.WriteString("\n[p] properties  [c] contracts  [a] analytics  [l] logout  [q] quit\n")

	case stepViewing:
		s.WriteString(m.page)
		s.WriteString("\n[b] back\n")
	}

	return s.String()
}

func writeMenu(s *strings.Builder, items []string, cursor int) {
	for i, item := range items {
		if i == cursor {
			s.WriteString("> " + selectedStyle.Render(item) + "\n")
			continue
		}
		s.WriteString("  " + normalStyle.Render(item) + "\n")
	}
}

func renderDashboard(d dashboard) string {
	var s strings.Builder
	if d.Banner != "" {
		s.WriteString(bannerStyle.Render(d.Banner) + "\n\n")
	}
	if d.Message != "" {
		s.WriteString(errorStyle.Render(d.Message) + "\n")
		return s.String()
	}
	s.WriteString(promptStyle.Render(d.Title) + "\n\n")
	for _, f := range d.Features {
		s.WriteString(fmt.Sprintf("• %s\n  %s\n", f.Title, f.Description))
	}
	return s.String()
}

func renderProperties(list []property) string {
	if len(list) == 0 {
		return "No properties yet.\n"
	}
	var s strings.Builder
	s.WriteString(promptStyle.Render(fmt.Sprintf("Properties (%d)", len(list))) + "\n\n")
	for _, p := range list {
		s.WriteString(fmt.Sprintf("• %-10s %-30s %8.1f m²\n", p.Type, p.Address, p.Area))
	}
	return s.String()
}

func renderContracts(list []contract) string {
	if len(list) == 0 {
		return "No contracts yet.\n"
	}
	var s strings.Builder
	s.WriteString(promptStyle.Render(fmt.Sprintf("Contracts (%d)", len(list))) + "\n\n")
	for _, c := range list {
		s.WriteString(fmt.Sprintf("• %-4s %-30s %s ↔ %s  %.0f  [%s]\n",
			c.Type, c.PropertyAddress, c.CreatorEmail, c.CounterpartyEmail, c.Amount, c.Status))
	}
	return s.String()
}

func renderSummary(s summary) string {
	return fmt.Sprintf("%s\n\nProperties: %d (%.1f m² total, %.1f m² average)\nContracts:  %d\nActive amount: %.0f\n",
		promptStyle.Render("Analytics"), s.PropertyCount, s.TotalArea, s.AverageArea, s.ContractCount, s.ActiveContractAmount)
}

func main() {
	var apiURL, lang string
	cmd := &cobra.Command{
		Use:   "realty-console",
		Short: "Terminal client for the realty server",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(initialModel(newAPIClient(apiURL, lang)))
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", envOr("REALTY_API_URL", "http://localhost:3536"), "server base URL")
	cmd.Flags().StringVar(&lang, "lang", envOr("REALTY_LANG", "fa"), "preferred language (fa or en)")

	if err := cmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
