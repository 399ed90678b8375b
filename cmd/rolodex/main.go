package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/field"
	"github.com/smileynet/rolodex/internal/shell"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Start the interactive assistant."`
	Browse  BrowseCmd        `cmd:"" help:"Open the interactive contact dashboard TUI."`
	Check   CheckCmd         `cmd:"" help:"Validate a field value."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBook returns the session's starting book: empty, or populated from
// the contacts seed when demo is set. A local .rolodex/contacts.yaml
// overrides the embedded sample.
func newBook(demo bool) (*book.Book, error) {
	if !demo {
		return book.New(), nil
	}
	seeds := rolodex.OverlayFS(".rolodex", rolodex.Templates)
	return book.LoadSeed(seeds, "contacts.yaml")
}

// ShellCmd starts the line-oriented assistant session.
type ShellCmd struct {
	Demo bool `help:"Start with sample contacts loaded." default:"false"`
}

// Run starts the shell with real standard streams.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	b, err := newBook(s.Demo)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	sh := shell.New(os.Stdin, os.Stdout, b,
		shell.WithPrompt(cfg.Shell.Prompt),
		shell.WithGreeting(cfg.Shell.Greeting),
		shell.WithBirthdayWindow(cfg.Book.BirthdayWindow),
	)
	return sh.Run()
}

// BrowseCmd opens the contact dashboard TUI.
type BrowseCmd struct {
	Demo bool `help:"Start with sample contacts loaded." default:"false"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the dashboard TUI.
func (b *BrowseCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	bk, err := newBook(b.Demo)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	m := tui.NewModel(
		tui.WithBook(bk),
		tui.WithBirthdayWindow(cfg.Book.BirthdayWindow),
	)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return b.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// CheckCmd validates a single field value and reports the result.
type CheckCmd struct {
	Phone    CheckPhoneCmd    `cmd:"" help:"Validate a phone number."`
	Birthday CheckBirthdayCmd `cmd:"" help:"Validate a birthday date."`
}

// CheckPhoneCmd validates a phone number argument.
type CheckPhoneCmd struct {
	Value string `arg:"" help:"Phone number to validate."`
}

// Run validates the phone number.
func (c *CheckPhoneCmd) Run() error {
	return c.run(os.Stdout)
}

// run validates against the given writer, enabling testable wiring.
func (c *CheckPhoneCmd) run(w io.Writer) error {
	p, err := field.NewPhone(c.Value)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s is a valid phone number\n", p.Value())
	return nil
}

// CheckBirthdayCmd validates a birthday argument.
type CheckBirthdayCmd struct {
	Value string `arg:"" help:"Birthday in DD.MM.YYYY form."`
}

// Run validates the birthday.
func (c *CheckBirthdayCmd) Run() error {
	return c.run(os.Stdout)
}

// run validates against the given writer, enabling testable wiring.
func (c *CheckBirthdayCmd) run(w io.Writer) error {
	bd, err := field.NewBirthday(c.Value)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s is a valid birthday\n", bd.Value())
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitInvalid = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, invalid := range []error{
		field.ErrEmptyName,
		field.ErrInvalidPhone,
		field.ErrInvalidBirthday,
		book.ErrNotFound,
	} {
		if errors.Is(err, invalid) {
			return exitInvalid
		}
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
