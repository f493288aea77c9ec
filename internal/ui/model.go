package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quicklip/internal/config"
	"quicklip/internal/domain"
	"quicklip/internal/eventbus"
	"quicklip/internal/search"
	"quicklip/internal/store"
	"quicklip/internal/ui/logic"
	"quicklip/internal/ui/views"
)

// mode is the input mode the model is in
type mode int

const (
	modeSearch mode = iota
	modeEdit
)

// searchResultsMsg carries a finished search back into the update loop
type searchResultsMsg struct {
	query   string
	results []domain.SearchResultItem
	err     error
}

// mutationDoneMsg reports a completed store mutation
type mutationDoneMsg struct {
	err error
}

// eventReceivedMsg wraps a forwarded domain event for the UI
type eventReceivedMsg struct {
	event eventbus.DomainEvent
}

// Model represents the UI state
type Model struct {
	store    *store.ItemStore
	searcher *search.Service
	events   <-chan eventbus.DomainEvent

	mode       mode
	queryInput textinput.Model
	results    []domain.SearchResultItem
	nav        *logic.Navigator

	// Edit form state; editID is empty when adding a new item
	editID      string
	valueInput  textinput.Model
	tagsInput   textinput.Model
	tagsFocused bool

	styles   *views.Styles
	renderer *views.ResultRenderer

	width  int
	height int
	errMsg string

	// commitFn writes the committed value to the system clipboard;
	// swappable in tests
	commitFn func(string) error
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, itemStore *store.ItemStore, searcher *search.Service, events <-chan eventbus.DomainEvent) *Model {
	qi := textinput.New()
	qi.Placeholder = "Type to search…"
	qi.Prompt = "> "
	qi.Focus()

	vi := textinput.New()
	vi.Placeholder = "Snippet value"
	vi.Prompt = "value: "

	ti := textinput.New()
	ti.Placeholder = "comma, separated, tags"
	ti.Prompt = "tags:  "

	styles := views.NewStyles()

	nav := logic.NewNavigator()
	nav.SetViewport(cfg.UISettings.VisibleRows, cfg.UISettings.RowHeightRem)

	return &Model{
		store:      itemStore,
		searcher:   searcher,
		events:     events,
		mode:       modeSearch,
		queryInput: qi,
		valueInput: vi,
		tagsInput:  ti,
		nav:        nav,
		styles:     styles,
		renderer:   views.NewResultRenderer(styles),
		commitFn:   clipboard.WriteAll,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.searchCmd(""), m.waitForEvent())
}

// searchCmd runs a search off the update loop
func (m *Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.searcher.Search(context.Background(), query)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

// waitForEvent blocks on the forwarded event channel
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}
		return eventReceivedMsg{event: event}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// Ignore results for a query the user has already typed past
		if msg.query != m.queryInput.Value() {
			return m, nil
		}
		m.errMsg = ""
		m.results = msg.results
		m.nav.SetResults(len(msg.results))
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, m.searchCmd(m.queryInput.Value())

	case eventReceivedMsg:
		// Any domain event can change the ranked list; re-run the search
		return m, tea.Batch(m.searchCmd(m.queryInput.Value()), m.waitForEvent())

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateSearch(msg)
	}

	return m, nil
}

// updateSearch handles keys in search mode
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "down":
		m.nav.MoveDown()
		return m, nil

	case "up":
		m.nav.MoveUp()
		return m, nil

	case "enter":
		if len(m.results) > 0 {
			return m, m.commitSelected()
		}
		// No matches: offer to store what was typed
		if m.queryInput.Value() != "" {
			m.openForm("", m.queryInput.Value(), nil)
		}
		return m, textinput.Blink

	case "ctrl+n":
		m.openForm("", "", nil)
		return m, textinput.Blink

	case "ctrl+d":
		if item, ok := m.selected(); ok && item.Type == domain.ResultStored {
			return m, m.deleteCmd(item.ID)
		}
		return m, nil

	case "ctrl+e":
		if item, ok := m.selected(); ok && item.Type == domain.ResultStored {
			m.openForm(item.ID, item.Value, item.Tags)
			return m, textinput.Blink
		}
		return m, nil

	case "ctrl+s":
		// Promote a tracked clip to a stored item
		if item, ok := m.selected(); ok && item.Type == domain.ResultClipboardTracked {
			return m, m.addCmd(item.Value, nil)
		}
		return m, nil
	}

	previous := m.queryInput.Value()
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	if m.queryInput.Value() != previous {
		return m, tea.Batch(cmd, m.searchCmd(m.queryInput.Value()))
	}
	return m, cmd
}

// updateEdit handles keys in the add/edit form
func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "shift+tab":
		m.tagsFocused = !m.tagsFocused
		if m.tagsFocused {
			m.valueInput.Blur()
			m.tagsInput.Focus()
		} else {
			m.tagsInput.Blur()
			m.valueInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		value := m.valueInput.Value()
		tags := parseTags(m.tagsInput.Value())
		id := m.editID
		m.closeForm()
		if id == "" {
			if value == "" {
				return m, nil
			}
			return m, m.addCmd(value, tags)
		}
		// Empty values no-op inside the store
		return m, m.updateCmd(id, value, tags)
	}

	var cmd tea.Cmd
	if m.tagsFocused {
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	return m, cmd
}

// selected returns the result under the cursor
func (m *Model) selected() (domain.SearchResultItem, bool) {
	if len(m.results) == 0 {
		return domain.SearchResultItem{}, false
	}
	return m.results[m.nav.Cursor()], true
}

// commitSelected copies the selected value to the system clipboard and
// hides the window by quitting the program. The cursor is left untouched;
// committing is a terminal action, not a navigation step.
func (m *Model) commitSelected() tea.Cmd {
	item := m.results[m.nav.Cursor()]
	if err := m.commitFn(item.Value); err != nil {
		m.errMsg = fmt.Sprintf("failed to copy to clipboard: %v", err)
		log.Printf("Failed to copy selection: %v", err)
		return nil
	}
	return tea.Quit
}

func (m *Model) addCmd(value string, tags []string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.Add(context.Background(), value, tags)
		return mutationDoneMsg{err: err}
	}
}

func (m *Model) updateCmd(id, value string, tags []string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{err: m.store.Update(context.Background(), id, value, tags)}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{err: m.store.Delete(context.Background(), id)}
	}
}

func (m *Model) openForm(id, value string, tags []string) {
	m.mode = modeEdit
	m.editID = id
	m.valueInput.SetValue(value)
	m.tagsInput.SetValue(strings.Join(tags, ", "))
	m.tagsFocused = false
	m.queryInput.Blur()
	m.tagsInput.Blur()
	m.valueInput.Focus()
}

func (m *Model) closeForm() {
	m.mode = modeSearch
	m.editID = ""
	m.valueInput.Blur()
	m.tagsInput.Blur()
	m.queryInput.Focus()
}

// parseTags splits a comma-separated tag list, dropping empties.
func parseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
