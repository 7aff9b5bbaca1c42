package tui

import "strings"

// renderStatus renders the status line of a page: an error if there is one,
// otherwise an informational message.
func renderStatus(b *strings.Builder, status, errMsg string) {
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
		return
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(status))
		b.WriteString("\n")
	}
}
