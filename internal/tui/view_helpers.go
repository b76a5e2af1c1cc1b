package tui

import (
	"strings"
)

const pageWidth = 64

var divider = strings.Repeat("─", pageWidth)

// renderPage lays out a screen: title, divider, indented body, divider and
// the key hints.
func renderPage(title, body, hints string) string {
	lines := []string{titleStyle.Render(title), divider, ""}

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, "  "+line)
	}

	lines = append(lines, "", divider)
	if strings.TrimSpace(hints) != "" {
		lines = append(lines, helpStyle.Render(hints))
	}
	lines = append(lines, helpStyle.Render("ctrl+c: выход"))

	return strings.Join(lines, "\n")
}

func renderError(msg string) string {
	return errorStyle.Render("Ошибка: " + msg)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
