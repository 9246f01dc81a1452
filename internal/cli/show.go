package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"kanban-cli/internal/config"
	"kanban-cli/internal/jira"
	"kanban-cli/internal/model"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Show one ticket in full, with description and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if app.URL != "" {
				cfg.Jira.URL = app.URL
			}
			client, err := jira.NewClient(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			detail, err := client.Issue(ctx, args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}
}

func printDetail(w io.Writer, d model.TicketDetail) {
	fmt.Fprintf(w, "%s %s  %s\n", d.Type.Glyph(), d.Key, d.Summary)
	fmt.Fprintf(w, "Type:     %s\n", d.Type)
	fmt.Fprintf(w, "Status:   %s\n", d.Status)
	fmt.Fprintf(w, "Assignee: %s\n", d.Assignee)
	if d.Reporter != "" {
		fmt.Fprintf(w, "Reporter: %s\n", d.Reporter)
	}
	if d.Priority != "" {
		fmt.Fprintf(w, "Priority: %s\n", d.Priority)
	}
	if len(d.Labels) > 0 {
		fmt.Fprintf(w, "Labels:   %s\n", strings.Join(d.Labels, ", "))
	}
	if d.Created != "" {
		fmt.Fprintf(w, "Created:  %s\n", d.Created)
	}
	if d.Updated != "" {
		fmt.Fprintf(w, "Updated:  %s\n", d.Updated)
	}

	if d.Description != "" {
		fmt.Fprintf(w, "\nDescription\n\n%s\n", renderMarkdown(d.Description))
	}
	for _, c := range d.Comments {
		fmt.Fprintf(w, "\n--- %s (%s)\n%s\n", c.Author, c.Created, renderMarkdown(c.Body))
	}
}

// renderMarkdown pretty-prints tracker rich text for the terminal,
// falling back to the raw text if glamour can't render it.
func renderMarkdown(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
