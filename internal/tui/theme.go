package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"kanban-cli/internal/lanes"
)

// Theme/palette helpers.
//
// The board must stay readable on both light and dark terminal
// backgrounds, so everything goes through lipgloss.AdaptiveColor and
// "faint" styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorBorder lipgloss.TerminalColor = ac("250", "240")

	// Lane header colors, one per lane in fixed lane order.
	colorLaneTodo       lipgloss.TerminalColor = ac("30", "6")  // cyan
	colorLaneInProgress lipgloss.TerminalColor = ac("130", "3") // yellow
	colorLaneReview     lipgloss.TerminalColor = ac("90", "5")  // magenta
	colorLaneDone       lipgloss.TerminalColor = ac("22", "2")  // green
)

func laneColor(l lanes.Lane) lipgloss.TerminalColor {
	switch l {
	case lanes.InProgress:
		return colorLaneInProgress
	case lanes.Review:
		return colorLaneReview
	case lanes.Done:
		return colorLaneDone
	default:
		return colorLaneTodo
	}
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. termenv.EnvColorProfile respects CLICOLOR, which
// can accidentally disable colors in a TUI, so only NO_COLOR is
// honored here; otherwise we follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If COLORTERM/TERM indicate stronger support than the detector
	// reports, trust the env (some terminals under-report on probing).
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection, since some
// terminals never report theirs and AdaptiveColor would guess wrong.
//
// Priority: KANBAN_TUI_THEME=light|dark, then KANBAN_TUI_DARKBG, then
// the COLORFGBG heuristic.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("KANBAN_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("KANBAN_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	// COLORFGBG is usually "fg;bg"; treat light background codes as
	// non-dark. Heuristic, but better than a consistently wrong palette.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
