package tui

import (
	"strconv"
	"strings"

	"devdash/internal/pipeline"
)

// renderPageControls renders the page strip for a list panel. One page (or
// none) renders nothing; the controls only exist when there is somewhere to
// go.
func renderPageControls(current, total int) string {
	if total <= 1 {
		return ""
	}

	var b strings.Builder
	if current > 1 {
		b.WriteString(styleMuted().Render("< "))
	} else {
		b.WriteString("  ")
	}
	for i, n := range pipeline.PageNumbers(current, total) {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case n == pipeline.Ellipsis:
			b.WriteString(styleMuted().Render("…"))
		case n == current:
			b.WriteString(styleSelected().Render(" " + strconv.Itoa(n) + " "))
		default:
			b.WriteString(strconv.Itoa(n))
		}
	}
	if current < total {
		b.WriteString(styleMuted().Render(" >"))
	}
	return b.String()
}
