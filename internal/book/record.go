// Package book implements contact records and the in-memory address book
// that holds them, keyed by contact name.
package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/field"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound       = errors.New("book: contact not found")
	ErrPhoneNotFound  = errors.New("book: phone not found")
	ErrDuplicatePhone = errors.New("book: phone already on record")
)

// Record groups a contact's fields: one name, zero-or-more phone numbers,
// and an optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a Record for the given name with no phones or birthday.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() field.Name { return r.name }

// Phones returns a snapshot of the contact's phone numbers in insertion order.
func (r *Record) Phones() []field.Phone {
	return append([]field.Phone(nil), r.phones...)
}

// AddPhone validates and appends a phone number. Duplicates are rejected.
func (r *Record) AddPhone(s string) error {
	p, err := field.NewPhone(s)
	if err != nil {
		return err
	}
	if r.phoneIndex(p.Value()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, p.Value())
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces an existing phone number in place.
func (r *Record) EditPhone(old, updated string) error {
	i := r.phoneIndex(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, old)
	}
	p, err := field.NewPhone(updated)
	if err != nil {
		return err
	}
	if j := r.phoneIndex(p.Value()); j >= 0 && j != i {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, p.Value())
	}
	r.phones[i] = p
	return nil
}

// RemovePhone deletes a phone number from the record.
func (r *Record) RemovePhone(s string) error {
	i := r.phoneIndex(s)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, s)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// FindPhone returns the matching phone entry, if present.
func (r *Record) FindPhone(s string) (field.Phone, bool) {
	if i := r.phoneIndex(s); i >= 0 {
		return r.phones[i], true
	}
	return field.Phone{}, false
}

// phoneIndex returns the position of the phone with the given value, or -1.
func (r *Record) phoneIndex(s string) int {
	for i, p := range r.phones {
		if p.Value() == s {
			return i
		}
	}
	return -1
}

// SetBirthday validates and sets the contact's birthday, replacing any
// previous value.
func (r *Record) SetBirthday(s string) error {
	b, err := field.NewBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the contact's birthday, if set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// ClearBirthday removes the contact's birthday.
func (r *Record) ClearBirthday() { r.birthday = nil }

// String renders the contact as a single display line.
func (r *Record) String() string {
	phones := "N/A"
	if len(r.phones) > 0 {
		vals := make([]string, len(r.phones))
		for i, p := range r.phones {
			vals[i] = p.Value()
		}
		phones = strings.Join(vals, "; ")
	}
	birthday := "N/A"
	if r.birthday != nil {
		birthday = r.birthday.Value()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name.Value(), phones, birthday)
}
