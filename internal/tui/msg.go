package tui

// saveContactMsg carries submitted form values for the root model to apply
// to the book.
type saveContactMsg struct {
	name     string
	phone    string
	birthday string
	editing  bool
}

// clearFlashMsg clears the transient status line.
type clearFlashMsg struct{}
