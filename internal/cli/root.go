package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kanban-cli/internal/board"
	"kanban-cli/internal/config"
	"kanban-cli/internal/jira"
	"kanban-cli/internal/logging"
	"kanban-cli/internal/model"
	"kanban-cli/internal/parse"
	"kanban-cli/internal/tui"
)

type App struct {
	JQL      string
	Epic     string
	Assignee string
	URL      string
	Refresh  int
	Once     bool
	JSON     bool
	Input    string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "kanban",
		Short:        "Terminal kanban board for Jira-style trackers",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Live board for your configured query
  kanban

  # One-off snapshot, e.g. under watch(1)
  watch -c kanban --once

  # Board for a specific epic or assignee
  kanban --epic PROJ-100
  kanban --assignee 'J Doe'

  # Render a raw fixed-width listing without touching the API
  kanban --input tickets.txt
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.URL, "url", "", "Tracker base URL (overrides config)")
	cmd.Flags().StringVar(&app.JQL, "jql", "", "Custom JQL query (overrides config query entirely)")
	cmd.Flags().StringVar(&app.Epic, "epic", "", "Filter by epic key")
	cmd.Flags().StringVar(&app.Assignee, "assignee", "", "Show tickets for a specific assignee")
	cmd.Flags().IntVarP(&app.Refresh, "refresh", "r", 0, "Auto-refresh interval in seconds (default from config, 60)")
	cmd.Flags().BoolVar(&app.Once, "once", false, "Print the board once and exit")
	cmd.Flags().BoolVar(&app.JSON, "json", false, "With --once: print tickets as JSON")
	cmd.Flags().StringVar(&app.Input, "input", "", "Read a raw fixed-width ticket listing from a file ('-' for stdin) instead of querying the tracker")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

func runBoard(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(&cfg, app)

	logDir := ""
	if p, err := config.Path(); err == nil {
		logDir = filepath.Dir(p)
	}
	log, closeLog := logging.Open(logDir)
	defer closeLog()

	fetch, err := newFetcher(cfg, app, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	tickets, err := fetch(ctx)
	cancel()
	if err != nil {
		return err
	}

	if app.Once {
		return printOnce(cmd.OutOrStdout(), tickets, app.JSON)
	}

	every := time.Duration(cfg.UI.RefreshSeconds) * time.Second
	return tui.Run(board.Build(tickets), tui.Fetcher(fetch), every, log)
}

func applyOverrides(cfg *config.Config, app *App) {
	if app.URL != "" {
		cfg.Jira.URL = app.URL
	}
	cfg.Query.JQL = buildJQL(app, cfg.Query.JQL)
	if app.Refresh > 0 {
		cfg.UI.RefreshSeconds = app.Refresh
	}
}

// buildJQL folds the CLI filter flags into the configured query.
// --jql replaces the query outright; --epic and --assignee narrow it.
func buildJQL(app *App, defaultJQL string) string {
	if app.JQL != "" {
		return app.JQL
	}

	jql := defaultJQL
	if app.Epic != "" {
		jql = fmt.Sprintf("\"Epic Link\" = %s AND %s", app.Epic, jql)
	}
	if app.Assignee != "" {
		clause := fmt.Sprintf("assignee = '%s'", app.Assignee)
		if strings.Contains(jql, "assignee = currentUser()") {
			jql = strings.ReplaceAll(jql, "assignee = currentUser()", clause)
		} else {
			jql = clause + " AND " + jql
		}
	}
	return jql
}

// newFetcher picks the ticket source: a raw fixed-width listing when
// --input is given, the tracker API otherwise. Both return complete
// batches; the TUI re-invokes the fetcher on every refresh.
func newFetcher(cfg config.Config, app *App, log *slog.Logger) (func(context.Context) ([]model.Ticket, error), error) {
	if app.Input != "" {
		path := app.Input
		return func(ctx context.Context) ([]model.Ticket, error) {
			raw, err := readInput(path)
			if err != nil {
				return nil, err
			}
			tickets, dropped := parse.Lines(raw, parse.DefaultScheme)
			if dropped > 0 {
				log.Info("skipped non-ticket lines", "count", dropped)
			}
			return tickets, nil
		}, nil
	}

	client, err := jira.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	jql := cfg.Query.JQL
	return func(ctx context.Context) ([]model.Ticket, error) {
		return client.Search(ctx, jql)
	}, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
