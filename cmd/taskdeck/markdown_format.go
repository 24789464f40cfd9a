package main

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

const defaultLineWidth = 80

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// renderMarkdownOrDash formats a task description for terminal display,
// returning "-" for empty input.
func renderMarkdownOrDash(value string, width int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	if width < 1 {
		width = 1
	}

	if renderer := markdownRenderer(width); renderer != nil {
		formatted, err := renderer.Render(value)
		if err == nil && strings.TrimSpace(formatted) != "" {
			return strings.Trim(formatted, "\n")
		}
	}
	return wordwrap.String(value, width)
}

func markdownRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

// terminalWidth returns the stdout width, or a default when stdout is not a
// terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return defaultLineWidth
	}
	return width
}
