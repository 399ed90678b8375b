package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
)

// Usage errors carry the exact reply the assistant prints for missing arguments.
var (
	errUsageAdd         = errors.New("Maybe you forgot enter name or phone?")
	errUsageChange      = errors.New("Enter the contact name, old phone and new phone!")
	errUsageName        = errors.New("You haven't entered a contact name or phone!")
	errUsageBirthday    = errors.New("Enter the contact name and birthday (DD.MM.YYYY)!")
	errUsageRemovePhone = errors.New("Enter the contact name and the phone to remove!")
)

// errorMessage maps a command error to the reply line the assistant prints.
// Sentinel errors carry internal package prefixes; the assistant speaks in
// the user-facing phrasing instead.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, book.ErrNotFound):
		return "Contact is not found!"
	case errors.Is(err, book.ErrPhoneNotFound):
		return "Phone number is not found!"
	case errors.Is(err, book.ErrDuplicatePhone):
		return "This phone number is already on the contact!"
	case errors.Is(err, field.ErrInvalidPhone):
		return "Phone number must be 10 digits."
	case errors.Is(err, field.ErrInvalidBirthday):
		return "Invalid date format. Use DD.MM.YYYY"
	}
	return err.Error()
}

func (s *Shell) cmdHello([]string) (string, error) {
	return "How can I help you?", nil
}

// cmdAdd creates the contact if needed and adds a phone to it.
func (s *Shell) cmdAdd(args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsageAdd
	}
	name, phone := args[0], args[1]

	rec, ok := s.book.Find(name)
	reply := "Contact updated."
	if !ok {
		r, err := book.NewRecord(name)
		if err != nil {
			return "", err
		}
		s.book.Add(r)
		rec = r
		reply = "Contact added."
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *Shell) cmdChange(args []string) (string, error) {
	if len(args) < 3 {
		return "", errUsageChange
	}
	name, old, updated := args[0], args[1], args[2]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	if err := rec.EditPhone(old, updated); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

func (s *Shell) cmdPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", errUsageName
	}
	name := args[0]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s: N/A", name), nil
	}
	vals := make([]string, len(phones))
	for i, p := range phones {
		vals[i] = p.Value()
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(vals, "; ")), nil
}

func (s *Shell) cmdAll([]string) (string, error) {
	records := s.book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) cmdAddBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsageBirthday
	}
	name, birthday := args[0], args[1]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (s *Shell) cmdShowBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", errUsageName
	}
	name := args[0]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}

	if bd, ok := rec.Birthday(); ok {
		return fmt.Sprintf("%s: %s", name, bd.Value()), nil
	}
	return fmt.Sprintf("%s: N/A", name), nil
}

func (s *Shell) cmdBirthdays([]string) (string, error) {
	upcoming := s.book.Upcoming(s.now(), s.window)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days!", s.window), nil
	}

	lines := make([]string, len(upcoming))
	for i, r := range upcoming {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) cmdRemove(args []string) (string, error) {
	if len(args) < 1 {
		return "", errUsageName
	}
	if err := s.book.Remove(args[0]); err != nil {
		return "", err
	}
	return "Contact removed.", nil
}

func (s *Shell) cmdRemovePhone(args []string) (string, error) {
	if len(args) < 2 {
		return "", errUsageRemovePhone
	}
	name, phone := args[0], args[1]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	if err := rec.RemovePhone(phone); err != nil {
		return "", err
	}
	return "Phone number removed.", nil
}

func (s *Shell) cmdRemoveBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", errUsageName
	}
	name := args[0]

	rec, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	rec.ClearBirthday()
	return "Birthday removed.", nil
}
