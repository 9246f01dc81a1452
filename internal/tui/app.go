package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kanban-cli/internal/board"
	"kanban-cli/internal/model"
)

// Fetcher produces a complete batch of tickets, or fails. Partial
// results are not a thing this pipeline understands.
type Fetcher func(ctx context.Context) ([]model.Ticket, error)

type refreshTickMsg struct{}

type ticketsMsg struct {
	tickets []model.Ticket
}

type fetchErrMsg struct {
	err error
}

type appModel struct {
	fetch Fetcher
	log   *slog.Logger

	board      board.Board
	width      int
	height     int
	paused     bool
	refreshing bool
	every      time.Duration
	lastUpdate time.Time
	fetchErr   string

	spin spinner.Model
}

func newAppModel(b board.Board, fetch Fetcher, every time.Duration, log *slog.Logger) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleMuted()
	return appModel{
		fetch:      fetch,
		log:        log,
		board:      b,
		every:      every,
		lastUpdate: time.Now(),
		spin:       sp,
	}
}

func (m appModel) Init() tea.Cmd { return scheduleRefresh(m.every) }

func scheduleRefresh(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func fetchCmd(fetch Fetcher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tickets, err := fetch(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return ticketsMsg{tickets: tickets}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Resize only re-runs layout+render; tickets stay categorized.
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m.startRefresh()
		case "p":
			m.paused = !m.paused
			return m, nil
		}
		return m, nil

	case refreshTickMsg:
		if m.paused || m.refreshing {
			return m, scheduleRefresh(m.every)
		}
		var cmd tea.Cmd
		m, cmd = m.startRefresh()
		return m, tea.Batch(cmd, scheduleRefresh(m.every))

	case ticketsMsg:
		m.board = board.Build(msg.tickets)
		m.lastUpdate = time.Now()
		m.fetchErr = ""
		m.refreshing = false
		return m, nil

	case fetchErrMsg:
		// Keep the last good board on screen; only the footer changes.
		m.fetchErr = msg.err.Error()
		m.refreshing = false
		m.log.Warn("refresh failed", "error", msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) startRefresh() (appModel, tea.Cmd) {
	if m.refreshing || m.fetch == nil {
		return m, nil
	}
	m.refreshing = true
	return m, tea.Batch(m.spin.Tick, fetchCmd(m.fetch))
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Kanban Board")

	bodyHeight := m.height - 4
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	body := renderBoard(m.board, m.width, bodyHeight)

	return strings.Join([]string{header, body, m.footer()}, "\n\n")
}

func (m appModel) footer() string {
	left := "r: refresh  p: pause  q: quit"
	status := fmt.Sprintf("updated %s", m.lastUpdate.Format("15:04:05"))
	if m.paused {
		status += "  [paused]"
	}
	if m.refreshing {
		status = m.spin.View() + status
	}
	line := styleMuted().Render(left + "   " + status)
	if m.fetchErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(ac("160", "196"))
		line += "\n" + errStyle.Render(truncateToWidth("refresh failed: "+m.fetchErr, m.width))
	}
	return line
}

// Run starts the interactive board. The first batch is fetched by the
// caller before the terminal is taken over, so a bad config fails with
// a plain error instead of a flash of alternate screen.
func Run(b board.Board, fetch Fetcher, every time.Duration, log *slog.Logger) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(b, fetch, every, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
