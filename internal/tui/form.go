package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/book"
)

// Form field indices.
const (
	fieldName = iota
	fieldPhone
	fieldBirthday
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"name",
	"phone",
	"birthday (DD.MM.YYYY)",
}

// formState handles add and edit for a contact. In edit mode the name is
// fixed and the phone/birthday inputs append to the existing record.
type formState struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	editing bool
	flash   string
	keys    formKeys
}

// newFormState creates a form, prefilled from rec when editing.
func newFormState(rec *book.Record) formState {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	f := formState{
		inputs: inputs,
		keys:   FormKeyMap(),
	}

	if rec != nil {
		f.editing = true
		f.inputs[fieldName].SetValue(rec.Name().Value())
		if bd, ok := rec.Birthday(); ok {
			f.inputs[fieldBirthday].SetValue(bd.Value())
		}
		f.focus = fieldPhone
	}

	f.inputs[f.focus].Focus()
	return f
}

// Init returns the cursor blink command.
func (f formState) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes form messages. Submission is emitted as a saveContactMsg
// for the root model to apply.
func (f formState) Update(msg tea.Msg) (formState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Submit):
		if f.focus == fieldCount-1 {
			return f, f.submitCmd()
		}
		return f.moveFocus(1), nil

	case key.Matches(keyMsg, f.keys.Next):
		return f.moveFocus(1), nil

	case key.Matches(keyMsg, f.keys.Prev):
		return f.moveFocus(-1), nil
	}

	return f.updateInput(msg)
}

// moveFocus shifts input focus by delta, wrapping around. Edit mode skips
// the fixed name field.
func (f formState) moveFocus(delta int) formState {
	f.inputs[f.focus].Blur()

	first := 0
	if f.editing {
		first = fieldPhone
	}
	span := fieldCount - first

	next := f.focus + delta
	if next < first {
		next = first + (next-first+span)%span
	}
	if next >= fieldCount {
		next = first + (next-first)%span
	}

	f.focus = next
	f.inputs[f.focus].Focus()
	return f
}

// updateInput forwards a message to the focused text input.
func (f formState) updateInput(msg tea.Msg) (formState, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// submitCmd packages the current field values as a save request.
func (f formState) submitCmd() tea.Cmd {
	save := saveContactMsg{
		name:     strings.TrimSpace(f.inputs[fieldName].Value()),
		phone:    strings.TrimSpace(f.inputs[fieldPhone].Value()),
		birthday: strings.TrimSpace(f.inputs[fieldBirthday].Value()),
		editing:  f.editing,
	}
	return func() tea.Msg { return save }
}

// View renders the form.
func (f formState) View() string {
	var sb strings.Builder

	title := "Add contact"
	if f.editing {
		title = "Edit contact"
	}
	sb.WriteString(TitleStyle().Render(title))
	sb.WriteString("\n\n")

	for i := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = CursorMarker
		}
		fmt.Fprintf(&sb, "%s%-22s %s\n", marker, fieldLabels[i], f.inputs[i].View())
	}

	if f.flash != "" {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle().Render(f.flash))
		sb.WriteString("\n")
	}

	return sb.String()
}
