package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"spacevenue/internal/currency"
	"spacevenue/internal/db"
	"spacevenue/internal/models"
	"spacevenue/internal/station"
)

// Input modes for the bottom entry field.
const (
	inputNone = iota
	inputCustomer
	inputRate
)

// DashboardModel is the TUI model for the live station board. A one-second
// tick re-reads every engine so timers and costs stay fresh; engine
// transitions also request an immediate repaint through the onChange
// notification.
type DashboardModel struct {
	width  int
	height int

	manager  *station.Manager
	log      *zap.Logger
	selected int

	arabic bool
	status string

	inputMode int
	input     textinput.Model

	// Snapshots whose save failed, kept per station so pressing stop again
	// retries the write instead of losing the session.
	pending map[string]*models.Session
}

// dashboardTickMsg is sent every second to refresh timers and costs.
type dashboardTickMsg struct{}

// NewDashboardModel creates the dashboard TUI model.
func NewDashboardModel(manager *station.Manager, arabic bool, log *zap.Logger) DashboardModel {
	input := textinput.New()
	input.CharLimit = 40
	input.Width = 30

	return DashboardModel{
		manager: manager,
		log:     log,
		arabic:  arabic,
		status:  "Ready",
		input:   input,
		pending: make(map[string]*models.Session),
	}
}

// Init starts the refresh ticker.
func (m DashboardModel) Init() tea.Cmd {
	return dashboardTick()
}

func dashboardTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return dashboardTickMsg{}
	})
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardTickMsg:
		// Nothing to mutate: View re-reads the engines. Keep ticking.
		return m, dashboardTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateKeys handles navigation and station commands outside input mode.
func (m DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	// Station commands need a station to act on.
	if m.manager.Len() == 0 {
		return m, nil
	}
	engine := m.manager.Engines()[m.selected]

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.manager.Len()-1 {
			m.selected++
		}

	case "s":
		engine.Start()
		m.status = fmt.Sprintf("Started %s", engine.Name())
		m.log.Info("station started", zap.String("station", engine.Name()))

	case "p", " ":
		engine.TogglePause()
		m.status = fmt.Sprintf("%s is now %s", engine.Name(), engine.State())

	case "x":
		session := engine.Stop()
		if session == nil {
			// A stopped station may still have an unsaved snapshot from a
			// failed write; stop again retries it.
			session = m.pending[engine.Name()]
		}
		if session == nil {
			break
		}
		if err := db.RecordCompletedSession(session); err != nil {
			m.pending[engine.Name()] = session
			m.status = fmt.Sprintf("Storage error saving %s: %v (press x to retry)", engine.Name(), err)
			m.log.Error("session save failed", zap.String("station", engine.Name()), zap.Error(err))
			break
		}
		delete(m.pending, engine.Name())
		m.status = fmt.Sprintf("Stopped %s | %s", engine.Name(), currency.Format(session.Cost, m.arabic))
		m.log.Info("session saved",
			zap.String("station", session.StationName),
			zap.Int("duration_seconds", session.DurationSeconds),
			zap.Float64("cost", session.Cost))

	case "r":
		engine.Reset()
		m.status = fmt.Sprintf("Reset %s", engine.Name())

	case "c":
		m.inputMode = inputCustomer
		m.input.Placeholder = "Customer name"
		m.input.SetValue(engine.Customer())
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		m.inputMode = inputRate
		m.input.Placeholder = "Rate per hour"
		m.input.SetValue(strconv.FormatFloat(engine.Rate(), 'f', -1, 64))
		m.input.Focus()
		return m, textinput.Blink

	case "n":
		m.arabic = !m.arabic
		if m.arabic {
			m.status = "Arabic numerals enabled"
		} else {
			m.status = "Arabic numerals disabled"
		}
	}

	return m, nil
}

// updateInput handles the customer/rate entry field.
func (m DashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.manager.Len() == 0 {
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	}
	engine := m.manager.Engines()[m.selected]

	switch msg.String() {
	case "esc":
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.inputMode {
		case inputCustomer:
			engine.SetCustomer(value)
			m.status = fmt.Sprintf("Customer set for %s", engine.Name())
		case inputRate:
			rate, err := strconv.ParseFloat(value, 64)
			if err != nil || rate < 0 {
				m.status = "Invalid rate: must be a non-negative number"
			} else {
				engine.SetRate(rate)
				m.status = fmt.Sprintf("Rate for %s set to %s/hr", engine.Name(), currency.Format(rate, m.arabic))
			}
		}
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the station board.
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1)
	sections = append(sections, headerStyle.Render("SPACE VENUE — LIVE STATIONS"))

	for i, engine := range m.manager.Engines() {
		sections = append(sections, m.renderStationRow(engine, i == m.selected))
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 1)
	sections = append(sections, "", statusStyle.Render(m.status))

	if m.inputMode != inputNone {
		label := "Customer:"
		if m.inputMode == inputRate {
			label = "Rate (EGP/hr):"
		}
		inputStyle := lipgloss.NewStyle().Padding(0, 1)
		sections = append(sections, inputStyle.Render(label+" "+m.input.View()))
	}

	sections = append(sections, m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStationRow renders one station card line.
func (m DashboardModel) renderStationRow(engine *station.Engine, selected bool) string {
	stateColor := ColorStopped
	switch engine.State() {
	case station.Running:
		stateColor = ColorRunning
	case station.Paused:
		stateColor = ColorPaused
	}

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Width(16)
	stateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(stateColor)).
		Width(9)
	timerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Width(10)
	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	elapsed := int(engine.Elapsed().Seconds())
	timerText := currency.FormatClock(elapsed)
	if m.arabic {
		timerText = currency.ToArabicNumerals(timerText)
	}

	customer := engine.Customer()
	if customer == "" {
		customer = "—"
	}

	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		nameStyle.Render(engine.Name()),
		stateStyle.Render(engine.State().String()),
		timerStyle.Render(timerText),
		detailStyle.Render(fmt.Sprintf("%-14s", currency.Format(engine.Cost(), m.arabic))),
		detailStyle.Render(fmt.Sprintf("@ %s/hr  %s", currency.Format(engine.Rate(), m.arabic), customer)),
	)

	cardStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder))
	if selected {
		cardStyle = cardStyle.BorderForeground(lipgloss.Color(ColorAccentMain))
	}

	return cardStyle.Render(row)
}

// renderHelpBar renders the key hints at the bottom.
func (m DashboardModel) renderHelpBar() string {
	help := "↑/↓ select • s start • p pause/resume • x stop & save • r reset • c customer • e rate • n numerals • q quit"
	if m.inputMode != inputNone {
		help = "enter confirm • esc cancel"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Padding(0, 1).
		Render(help)
}
