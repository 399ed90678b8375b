// Package tui implements the interactive contact dashboard.
// It manages a two-pane browse layout with mode-based routing: a contact
// list with a detail pane, a contact form, a delete confirmation, and an
// upcoming-birthdays screen.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
)

// Mode identifies which screen the dashboard is showing.
type Mode int

// Dashboard modes.
const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirm
	ModeBirthdays
)

// Focus identifies which pane receives navigation keys in browse mode.
type Focus int

// Browse panes.
const (
	PaneLeft Focus = iota
	PaneRight
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// flashBarHeight is the number of lines reserved for the status line.
const flashBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// flashTimeout is how long a status line stays visible.
const flashTimeout = 2 * time.Second

// Model is the root Bubble Tea model for the contact dashboard.
type Model struct {
	mode   Mode
	focus  Focus
	width  int
	height int

	book   *book.Book
	window int
	now    func() time.Time

	browse   browseState
	form     formState
	confirm  confirmState
	viewport viewport.Model
	help     help.Model
	keys     browseKeys
	flash    string
}

// ModelOption configures Model creation.
type ModelOption func(*Model)

// WithBook sets the address book the dashboard operates on.
func WithBook(b *book.Book) ModelOption {
	return func(m *Model) { m.book = b }
}

// WithBirthdayWindow sets how many days ahead the birthdays screen scans.
func WithBirthdayWindow(days int) ModelOption {
	return func(m *Model) { m.window = days }
}

// WithClock sets the time source for birthday queries.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// NewModel creates a dashboard Model in browse mode with list-pane focus.
func NewModel(opts ...ModelOption) Model {
	m := Model{
		mode:     ModeBrowse,
		focus:    PaneLeft,
		book:     book.New(),
		window:   7,
		now:      time.Now,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     BrowseKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.browse = newBrowseState(m.book)
	m.syncDetail()
	return m
}

// Book returns the address book backing the dashboard.
func (m Model) Book() *book.Book { return m.book }

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		m.syncDetail()
		return m, nil

	case saveContactMsg:
		return m.applySave(msg)

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes key messages with mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeBirthdays:
		return m.handleBirthdaysKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleBrowseKey routes browse mode keys between the list and detail panes.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeForm
		m.form = newFormState(nil)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		name, ok := m.browse.Selected()
		if !ok {
			return m, nil
		}
		rec, _ := m.book.Find(name)
		m.mode = ModeForm
		m.form = newFormState(rec)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		name, ok := m.browse.Selected()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirm = confirmState{name: name}
		return m, nil

	case key.Matches(msg, m.keys.Birthdays):
		m.mode = ModeBirthdays
		return m, nil
	}

	if m.focus == PaneRight {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.browse = m.browse.moveUp()
		m.syncDetail()
	case key.Matches(msg, m.keys.Down):
		m.browse = m.browse.moveDown()
		m.syncDetail()
	}
	return m, nil
}

// handleFormKey processes form mode keys; esc cancels back to browse.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.form.keys.Cancel) {
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// handleConfirmKey processes the delete confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := ConfirmKeyMap()
	switch {
	case key.Matches(msg, keys.Confirm):
		name := m.confirm.name
		if err := m.book.Remove(name); err != nil {
			m.flash = err.Error()
		} else {
			m.flash = fmt.Sprintf("Removed %s", name)
		}
		m.mode = ModeBrowse
		m.browse = m.browse.refresh(m.book)
		m.syncDetail()
		return m, clearFlashCmd()

	case key.Matches(msg, keys.Cancel):
		m.mode = ModeBrowse
		return m, nil
	}
	return m, nil
}

// handleBirthdaysKey returns to browse mode on any bound key.
func (m Model) handleBirthdaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, BirthdaysKeyMap().Back) || msg.String() == "q" {
		m.mode = ModeBrowse
	}
	return m, nil
}

// applySave validates submitted form values against the book. Failures keep
// the form open with the validation message; success returns to browse.
func (m Model) applySave(msg saveContactMsg) (tea.Model, tea.Cmd) {
	if err := m.save(msg); err != nil {
		m.form.flash = err.Error()
		return m, nil
	}

	m.mode = ModeBrowse
	m.flash = fmt.Sprintf("Saved %s", msg.name)
	m.browse = m.browse.refresh(m.book)
	m.syncDetail()
	return m, clearFlashCmd()
}

// save applies form values to the book. Every provided field is validated
// before anything is committed, so a rejected phone or birthday leaves both
// the book and an existing record untouched.
func (m Model) save(msg saveContactMsg) error {
	if msg.editing {
		rec, ok := m.book.Find(msg.name)
		if !ok {
			return book.ErrNotFound
		}
		if msg.birthday != "" {
			if _, err := field.NewBirthday(msg.birthday); err != nil {
				return err
			}
		}
		if msg.phone != "" {
			if err := rec.AddPhone(msg.phone); err != nil {
				return err
			}
		}
		if msg.birthday != "" {
			if err := rec.SetBirthday(msg.birthday); err != nil {
				return err
			}
		}
		return nil
	}

	rec, err := book.NewRecord(msg.name)
	if err != nil {
		return err
	}
	if msg.phone != "" {
		if err := rec.AddPhone(msg.phone); err != nil {
			return err
		}
	}
	if msg.birthday != "" {
		if err := rec.SetBirthday(msg.birthday); err != nil {
			return err
		}
	}
	m.book.Add(rec)
	return nil
}

// syncDetail refreshes the detail viewport for the current selection.
func (m *Model) syncDetail() {
	name, ok := m.browse.Selected()
	if !ok {
		m.viewport.SetContent("Select a contact.")
		return
	}
	m.viewport.SetContent(detailView(m.book, name, m.now()))
}

// clearFlashCmd schedules the status line to clear.
func clearFlashCmd() tea.Cmd {
	return tea.Tick(flashTimeout, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

// contentHeight returns the usable height for pane content, accounting for
// border chrome, the status line, and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - flashBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the current mode with status and help bars.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content string
	switch m.mode {
	case ModeForm:
		content = m.viewSingle(m.form.View())
	case ModeConfirm:
		content = m.viewSingle(m.confirm.View())
	case ModeBirthdays:
		content = m.viewSingle(birthdaysView(m.book, m.now(), m.window))
	default:
		content = m.viewBrowse()
	}

	flashLine := ""
	if m.flash != "" {
		flashLine = FlashStyle().Render(m.flash)
	}
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, content, flashLine, helpView)
}

// viewBrowse renders the two-pane browse layout.
func (m Model) viewBrowse() string {
	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.browse.View(m.book, m.now(), m.window))
	rightPane := rightStyle.Render(m.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewSingle renders a full-width bordered screen for non-browse modes.
func (m Model) viewSingle(inner string) string {
	return FocusedBorder().
		Width(m.width - borderChrome).
		Height(m.contentHeight()).
		Render(inner)
}
