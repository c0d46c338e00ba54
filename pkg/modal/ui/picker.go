package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/marcus/modalslot/pkg/modal"
)

// Item is one choice in a Picker.
type Item struct {
	ID    string // Returned as the modal output when chosen
	Label string // Display text, also what the filter matches against
}

// PickerInput configures Picker.
type PickerInput struct {
	Title      string
	Items      []Item
	MaxVisible int // Default 8
	Width      int // Label width before truncation, default 40
}

type pickerModel struct {
	props   modal.Props[PickerInput, string]
	query   string
	visible []fuzzy.Match // nil when unfiltered
	cursor  int
	offset  int
}

// Picker lets the user choose one item, narrowing the list by typing. It
// closes with the chosen item's ID.
var Picker modal.View[PickerInput, string] = func(p modal.Props[PickerInput, string]) tea.Model {
	if p.Input.MaxVisible <= 0 {
		p.Input.MaxVisible = 8
	}
	if p.Input.Width <= 0 {
		p.Input.Width = 40
	}
	return &pickerModel{props: p}
}

func (m *pickerModel) Init() tea.Cmd { return nil }

// itemCount is the number of items passing the filter.
func (m *pickerModel) itemCount() int {
	if m.query == "" {
		return len(m.props.Input.Items)
	}
	return len(m.visible)
}

// item returns the i-th filtered item and the matched rune indexes.
func (m *pickerModel) item(i int) (Item, []int) {
	if m.query == "" {
		return m.props.Input.Items[i], nil
	}
	match := m.visible[i]
	return m.props.Input.Items[match.Index], match.MatchedIndexes
}

func (m *pickerModel) refilter() {
	m.cursor, m.offset = 0, 0
	if m.query == "" {
		m.visible = nil
		return
	}
	labels := make([]string, len(m.props.Input.Items))
	for i, it := range m.props.Input.Items {
		labels[i] = it.Label
	}
	m.visible = fuzzy.Find(m.query, labels)
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := m.itemCount()
	switch keyMsg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < n-1 {
			m.cursor++
		}
	case tea.KeyHome:
		m.cursor = 0
	case tea.KeyEnd:
		m.cursor = max(n-1, 0)
	case tea.KeyEnter:
		if m.cursor < n {
			it, _ := m.item(m.cursor)
			m.props.Close(it.ID)
		}
	case tea.KeyBackspace:
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.refilter()
		}
	case tea.KeyRunes:
		m.query += string(keyMsg.Runes)
		m.refilter()
	case tea.KeySpace:
		m.query += " "
		m.refilter()
	}
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *pickerModel) scroll(visibleCount, total int) {
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visibleCount {
		m.offset = m.cursor - visibleCount + 1
	}
	maxOffset := max(0, total-visibleCount)
	m.offset = min(max(m.offset, 0), maxOffset)
}

func (m *pickerModel) View() string {
	var sb strings.Builder
	if m.props.Input.Title != "" {
		sb.WriteString(Title.Render(m.props.Input.Title))
		sb.WriteString("\n\n")
	}
	sb.WriteString("/ " + m.query)
	sb.WriteString("\n")

	total := m.itemCount()
	if total == 0 {
		sb.WriteString(MutedText.Render("(no items)"))
		return sb.String()
	}

	visibleCount := min(m.props.Input.MaxVisible, total)
	m.scroll(visibleCount, total)

	if m.offset > 0 {
		sb.WriteString(MutedText.Render("↑ more above"))
		sb.WriteString("\n")
	}
	for i := 0; i < visibleCount; i++ {
		idx := m.offset + i
		it, matched := m.item(idx)
		label := highlight(ansi.Truncate(it.Label, m.props.Input.Width, "…"), matched)

		cursor, style := "  ", ListItemNormal
		if idx == m.cursor {
			cursor, style = ListCursor.Render("> "), ListItemFocused
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + style.Render(label))
	}
	if m.offset+visibleCount < total {
		sb.WriteString("\n")
		sb.WriteString(MutedText.Render("↓ more below"))
	}
	return sb.String()
}

// highlight marks the runes starting at the given byte offsets.
func highlight(label string, matched []int) string {
	if len(matched) == 0 {
		return label
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var sb strings.Builder
	for i, r := range label {
		if hit[i] {
			sb.WriteString(ListMatch.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
