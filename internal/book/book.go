package book

import (
	"fmt"
	"sort"
	"time"
)

// Book is an in-memory address book mapping contact names to records.
// Lookup is by exact name match only.
type Book struct {
	records map[string]*Record
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts the record under its name, replacing any existing record
// with the same name.
func (b *Book) Add(r *Record) {
	b.records[r.Name().Value()] = r
}

// Find returns the record for an exact name match.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Remove deletes the record for the given name.
func (b *Book) Remove(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(b.records, name)
	return nil
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records sorted by name.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name().Value() < out[j].Name().Value()
	})
	return out
}

// Upcoming returns records whose next birthday anniversary falls within
// days of today, soonest first (ties broken by name). Anniversaries roll
// over the year boundary, so a late-December check picks up early-January
// birthdays.
func (b *Book) Upcoming(today time.Time, days int) []*Record {
	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).
		AddDate(0, 0, days)

	type entry struct {
		rec  *Record
		next time.Time
	}
	var upcoming []entry
	for _, r := range b.records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		next := bd.Next(today)
		if next.After(cutoff) {
			continue
		}
		upcoming = append(upcoming, entry{rec: r, next: next})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].next.Equal(upcoming[j].next) {
			return upcoming[i].next.Before(upcoming[j].next)
		}
		return upcoming[i].rec.Name().Value() < upcoming[j].rec.Name().Value()
	})

	var out []*Record
	for _, e := range upcoming {
		out = append(out, e.rec)
	}
	return out
}
