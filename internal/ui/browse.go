package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/recall/internal/cache"
)

// BrowseResult contains the outcome of an interactive browse session.
type BrowseResult struct {
	Entry     *cache.Entry
	Cancelled bool
}

// entrySource implements fuzzy.Source over entry queries.
type entrySource []*cache.Entry

func (s entrySource) String(i int) string { return s[i].Query }
func (s entrySource) Len() int            { return len(s) }

// browseModel is the bubbletea model for browsing cache entries.
type browseModel struct {
	entries   []*cache.Entry
	filtered  []*cache.Entry
	input     textinput.Model
	cursor    int
	selected  *cache.Entry
	cancelled bool
	status    string
	now       time.Time
	maxHeight int
}

func newBrowseModel(entries []*cache.Entry, now time.Time) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(40)

	return browseModel{
		entries:   entries,
		filtered:  entries,
		input:     ti,
		now:       now,
		maxHeight: 10,
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case "ctrl+y":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				if err := clipboard.WriteAll(m.filtered[m.cursor].Summary); err != nil {
					m.status = "copy failed: " + err.Error()
				} else {
					m.status = "copied to clipboard"
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	m.filtered = m.filterEntries(m.input.Value())
	m.status = ""

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterEntries ranks entries against the filter text. An empty filter
// keeps the original (newest first) order.
func (m browseModel) filterEntries(query string) []*cache.Entry {
	if query == "" {
		return m.entries
	}

	matches := fuzzy.FindFrom(query, entrySource(m.entries))
	filtered := make([]*cache.Entry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.entries[match.Index])
	}
	return filtered
}

func (m browseModel) View() tea.View {
	if m.selected != nil || m.cancelled {
		return tea.NewView("")
	}

	var sb strings.Builder

	sb.WriteString("Browse cached results:\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(mutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			e := m.filtered[i]
			meta := mutedStyle.Render(fmt.Sprintf("(%s, %d hits)", FormatAge(e.Age(m.now)), e.HitCount))

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(clip(e.Query, 50)))
			} else {
				sb.WriteString("  ")
				sb.WriteString(normalStyle.Render(clip(e.Query, 50)))
			}
			sb.WriteString("  " + meta)
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(mutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		sb.WriteString(m.preview())
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(accentStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("↑/↓ navigate • enter print • ctrl+y copy • esc cancel"))

	return tea.NewView(sb.String())
}

// preview shows the first lines of the highlighted entry's summary.
func (m browseModel) preview() string {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return ""
	}

	const maxLines = 5
	lines := strings.Split(m.filtered[m.cursor].Summary, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "...")
	}
	for i, line := range lines {
		lines[i] = "  " + clip(line, 76)
	}
	return mutedStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// Browse shows an interactive fuzzy-filtered browser over cache entries.
// The UI renders on stderr so a selected summary can be piped from stdout.
func Browse(entries []*cache.Entry) (*BrowseResult, error) {
	if len(entries) == 0 {
		return &BrowseResult{Cancelled: true}, nil
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil, fmt.Errorf("interactive browse requires a terminal")
	}

	model := newBrowseModel(entries, time.Now())

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithColorProfile(profile))

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(browseModel)
	if m.cancelled || m.selected == nil {
		return &BrowseResult{Cancelled: true}, nil
	}
	return &BrowseResult{Entry: m.selected}, nil
}
