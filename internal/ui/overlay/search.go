package overlay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskboard/internal/ui/debounce"
)

// SearchDebounceID tags debounce messages from the search bar
const SearchDebounceID = 1

// SearchMsg carries a settled search query
type SearchMsg struct {
	Query string
}

// SearchOverlay is the search bar. Keystrokes are debounced into
// SearchMsg; Enter delivers the pending query at once and closes the bar,
// Esc clears the search.
type SearchOverlay struct {
	input      textinput.Model
	debounce   *debounce.Debouncer
	matchCount int
	styles     *Styles
}

// NewSearchOverlay creates a search bar seeded with the active query
func NewSearchOverlay(query string, delay time.Duration) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search titles..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(query)
	ti.Focus()

	return &SearchOverlay{
		input:    ti,
		debounce: debounce.New(SearchDebounceID, delay),
		styles:   New(),
	}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Query returns the text typed so far
func (s *SearchOverlay) Query() string {
	return s.input.Value()
}

// Debouncer exposes the input debouncer
func (s *SearchOverlay) Debouncer() *debounce.Debouncer {
	return s.debounce
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.Msg:
		if query, ok := s.debounce.Accept(msg); ok {
			return s, emit(SearchMsg{Query: query})
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			cmds := []tea.Cmd{closeCmd}
			if query, ok := s.debounce.Flush(); ok {
				cmds = append(cmds, emit(SearchMsg{Query: query}))
			}
			return s, tea.Batch(cmds...)

		case tea.KeyEsc:
			s.debounce.Cancel()
			s.input.SetValue("")
			return s, tea.Batch(emit(SearchMsg{Query: ""}), closeCmd)
		}
	}

	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if value := s.input.Value(); value != prev {
		return s, tea.Batch(cmd, s.debounce.Trigger(value))
	}
	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	view := s.input.View()
	if s.input.Value() != "" {
		view += s.styles.BarCount.Render(fmt.Sprintf(" (%d matches)", s.matchCount))
	}
	return s.styles.Bar.Render(view)
}

// Title implements Overlay interface (returns empty for search bar)
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay interface (full-width single line)
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}
