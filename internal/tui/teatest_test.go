package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// TestModel_Teatest_AddAndQuit drives a full add-contact session through the
// Bubble Tea runtime via teatest.
func TestModel_Teatest_AddAndQuit(t *testing.T) {
	m := NewModel(WithClock(testClock))

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))

	// Open the form and fill in a contact.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Carol")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0509999999")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter}) // submit with empty birthday

	// The form submits asynchronously via a tea.Cmd; wait until the save has
	// been applied and the browse screen is back before quitting, so "q" is
	// not swallowed by a still-focused form input.
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Saved Carol"))
	}, teatest.WithDuration(2*time.Second))

	// Back in browse mode, quit.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	rec, ok := final.Book().Find("Carol")
	if !ok {
		t.Fatal("Carol not in book after session")
	}
	if _, ok := rec.FindPhone("0509999999"); !ok {
		t.Error("phone not on record after session")
	}
	if bd, ok := rec.Birthday(); ok {
		t.Errorf("birthday = %v, want unset", bd)
	}
}

// TestModel_Teatest_QuitImmediately verifies a fresh dashboard exits cleanly.
func TestModel_Teatest_QuitImmediately(t *testing.T) {
	m := NewModel(WithClock(testClock))

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	if final.Book().Len() != 0 {
		t.Errorf("book size = %d, want 0", final.Book().Len())
	}
}
