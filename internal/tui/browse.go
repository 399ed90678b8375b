package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
)

// browseState manages the contact list and cursor for browse mode's left pane.
type browseState struct {
	names  []string
	cursor int
}

// newBrowseState builds the list from the book's current records.
func newBrowseState(b *book.Book) browseState {
	var bs browseState
	return bs.refresh(b)
}

// refresh reloads the name list from the book and clamps the cursor.
func (bs browseState) refresh(b *book.Book) browseState {
	bs.names = bs.names[:0]
	for _, r := range b.Records() {
		bs.names = append(bs.names, r.Name().Value())
	}
	if bs.cursor >= len(bs.names) {
		bs.cursor = len(bs.names) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

// Selected returns the name under the cursor, if any.
func (bs browseState) Selected() (string, bool) {
	if len(bs.names) == 0 || bs.cursor >= len(bs.names) {
		return "", false
	}
	return bs.names[bs.cursor], true
}

// moveUp moves the cursor up, wrapping at the top.
func (bs browseState) moveUp() browseState {
	if len(bs.names) > 0 {
		bs.cursor--
		if bs.cursor < 0 {
			bs.cursor = len(bs.names) - 1
		}
	}
	return bs
}

// moveDown moves the cursor down, wrapping at the bottom.
func (bs browseState) moveDown() browseState {
	if len(bs.names) > 0 {
		bs.cursor++
		if bs.cursor >= len(bs.names) {
			bs.cursor = 0
		}
	}
	return bs
}

// View renders the contact list. Contacts with a birthday inside the window
// are marked.
func (bs browseState) View(b *book.Book, today time.Time, window int) string {
	if len(bs.names) == 0 {
		return "No contacts yet.\n\nPress a to add one."
	}

	upcoming := make(map[string]bool)
	for _, r := range b.Upcoming(today, window) {
		upcoming[r.Name().Value()] = true
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle().Render(fmt.Sprintf("Contacts (%d)", len(bs.names))))
	sb.WriteString("\n\n")
	for i, name := range bs.names {
		marker := "  "
		if i == bs.cursor {
			marker = CursorMarker
		}
		sb.WriteString(marker)
		sb.WriteString(name)
		if upcoming[name] {
			sb.WriteString(UpcomingMark())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// detailView renders the right pane content for the selected contact.
func detailView(b *book.Book, name string, today time.Time) string {
	rec, ok := b.Find(name)
	if !ok {
		return "Select a contact."
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle().Render(rec.Name().Value()))
	sb.WriteString("\n\n")

	phones := rec.Phones()
	if len(phones) == 0 {
		sb.WriteString("phones:   N/A\n")
	} else {
		for i, p := range phones {
			label := "phones:  "
			if i > 0 {
				label = "         "
			}
			fmt.Fprintf(&sb, "%s %s\n", label, p.Value())
		}
	}

	if bd, ok := rec.Birthday(); ok {
		fmt.Fprintf(&sb, "birthday: %s\n", bd.Value())
		fmt.Fprintf(&sb, "next:     %s\n", bd.Next(today).Format("02.01.2006"))
	} else {
		sb.WriteString("birthday: N/A\n")
	}

	return sb.String()
}

// birthdaysView renders the upcoming birthdays screen.
func birthdaysView(b *book.Book, today time.Time, window int) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle().Render(fmt.Sprintf("Birthdays in the next %d days", window)))
	sb.WriteString("\n\n")

	upcoming := b.Upcoming(today, window)
	if len(upcoming) == 0 {
		sb.WriteString("Nothing coming up.")
		return sb.String()
	}

	for _, r := range upcoming {
		bd, _ := r.Birthday()
		fmt.Fprintf(&sb, "  %s  %s\n", bd.Next(today).Format("02.01"), r.Name().Value())
	}
	return sb.String()
}
