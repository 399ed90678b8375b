// Package shell implements the line-oriented interactive assistant over an
// in-memory address book.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
)

// Shell reads commands line by line and writes the assistant's replies.
// The book lives for the duration of the session.
type Shell struct {
	in       io.Reader
	out      io.Writer
	book     *book.Book
	prompt   string
	greeting string
	window   int
	now      func() time.Time
	commands map[string]handler
}

// handler executes one assistant command and returns the reply line.
type handler func(args []string) (string, error)

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the input prompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithGreeting sets the session greeting line.
func WithGreeting(greeting string) Option {
	return func(s *Shell) { s.greeting = greeting }
}

// WithBirthdayWindow sets how many days ahead the birthdays command scans.
func WithBirthdayWindow(days int) Option {
	return func(s *Shell) { s.window = days }
}

// WithClock sets the time source for birthday queries.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// New creates a Shell reading commands from in and writing replies to out.
func New(in io.Reader, out io.Writer, b *book.Book, opts ...Option) *Shell {
	s := &Shell{
		in:       in,
		out:      out,
		book:     b,
		prompt:   "Enter a command: ",
		greeting: "Welcome to the assistant bot!",
		window:   7,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.commands = map[string]handler{
		"hello":           s.cmdHello,
		"add":             s.cmdAdd,
		"change":          s.cmdChange,
		"phone":           s.cmdPhone,
		"all":             s.cmdAll,
		"add-birthday":    s.cmdAddBirthday,
		"show-birthday":   s.cmdShowBirthday,
		"birthdays":       s.cmdBirthdays,
		"remove":          s.cmdRemove,
		"remove-phone":    s.cmdRemovePhone,
		"remove-birthday": s.cmdRemoveBirthday,
	}
	return s
}

// Run processes commands until close/exit or end of input.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, s.greeting)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(s.out, "You have not entered anything")
			continue
		}

		cmd, args := parseInput(line)
		if cmd == "close" || cmd == "exit" {
			fmt.Fprintln(s.out, "Good bye!")
			return nil
		}

		fmt.Fprintln(s.out, s.Execute(cmd, args))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("shell: reading input: %w", err)
	}
	return nil
}

// Execute runs a single command and returns the reply line.
// Unknown commands and command errors become user-facing messages.
func (s *Shell) Execute(cmd string, args []string) string {
	h, ok := s.commands[cmd]
	if !ok {
		return "Invalid command."
	}

	reply, err := h(args)
	if err != nil {
		return errorMessage(err)
	}
	return reply
}

// parseInput splits a command line into the lowercased command word and its
// arguments. The caller guarantees a non-empty line.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	return strings.ToLower(parts[0]), parts[1:]
}
