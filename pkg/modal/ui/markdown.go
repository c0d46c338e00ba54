package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/marcus/modalslot/pkg/modal"
)

const defaultMarkdownWidth = 60

type markdownModel struct {
	props    modal.Props[string, modal.Void]
	width    int
	rendered string
}

// Markdown shows a markdown document. Enter or q closes it.
var Markdown modal.View[string, modal.Void] = func(p modal.Props[string, modal.Void]) tea.Model {
	m := &markdownModel{props: p, width: defaultMarkdownWidth}
	m.rendered = renderMarkdown(p.Input, m.width)
	return m
}

func (m *markdownModel) Init() tea.Cmd { return nil }

func (m *markdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := min(msg.Width*80/100, 100)
		width = max(width, 30)
		if width != m.width {
			m.width = width
			m.rendered = renderMarkdown(m.props.Input, width)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q":
			m.props.Done()
		}
	}
	return m, nil
}

func (m *markdownModel) View() string {
	return m.rendered + "\n" + MutedText.Render("enter close")
}

// renderMarkdown renders text with the dark glamour style, falling back to
// the raw text if rendering fails.
func renderMarkdown(text string, width int) string {
	if text == "" {
		return ""
	}

	// Use dark style directly (avoid expensive auto-detection)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}

	// Glamour adds lots of trailing newlines - strip them all
	return strings.TrimRight(rendered, "\n\r\t ")
}
