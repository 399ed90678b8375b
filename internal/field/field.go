// Package field implements the validated value types contact records are
// built from: names, phone numbers, and birthdays.
package field

import (
	"errors"
	"strings"
	"time"
)

// BirthdayLayout is the format birthdays are entered and displayed in (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// PhoneDigits is the exact number of digits a phone number must contain.
const PhoneDigits = 10

// Sentinel errors for caller-checkable validation failures.
var (
	ErrEmptyName       = errors.New("field: name cannot be empty")
	ErrInvalidPhone    = errors.New("field: phone number must be 10 digits")
	ErrInvalidBirthday = errors.New("field: invalid date format, use DD.MM.YYYY")
)

// Field is the capability shared by all contact field variants: holding a
// printable value.
type Field interface {
	Value() string
}

// Verify at compile time that all variants implement Field.
var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is a contact's display name and its key in the address book.
type Name struct {
	value string
}

// NewName trims surrounding whitespace and constructs a Name.
// An empty result is rejected.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

// Value returns the name text.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

// Phone is a validated phone number of exactly PhoneDigits digits.
type Phone struct {
	value string
}

// ValidPhone reports whether s is exactly PhoneDigits ASCII digits.
func ValidPhone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewPhone validates and constructs a Phone.
func NewPhone(s string) (Phone, error) {
	if !ValidPhone(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

// Value returns the phone number digits.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

// Birthday is a validated date of birth.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s in BirthdayLayout form and constructs a Birthday.
func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: t}, nil
}

// Date returns the parsed date of birth.
func (b Birthday) Date() time.Time { return b.date }

// Value returns the birthday in its entry format.
func (b Birthday) Value() string { return b.date.Format(BirthdayLayout) }

func (b Birthday) String() string { return b.Value() }

// Next returns the first anniversary of the birthday on or after today.
// A Feb 29 birthday lands on Mar 1 in common years via date normalization.
func (b Birthday) Next(today time.Time) time.Time {
	today = truncateDay(today)
	anniversary := anniversaryIn(b.date, today.Year(), today.Location())
	if anniversary.Before(today) {
		anniversary = anniversaryIn(b.date, today.Year()+1, today.Location())
	}
	return anniversary
}

// anniversaryIn places the birthday's month and day into the given year.
func anniversaryIn(date time.Time, year int, loc *time.Location) time.Time {
	return time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

// truncateDay strips the time-of-day component.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
