package book

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// seedFile mirrors the YAML layout of a contacts seed.
type seedFile struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday"`
}

// LoadSeed reads a contacts seed file from fsys and returns a Book
// populated with its contacts. Unknown YAML fields are rejected.
func LoadSeed(fsys fs.FS, name string) (*Book, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("book: opening seed %s: %w", name, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("book: parsing seed %s: %w", name, err)
	}

	b := New()
	for _, c := range seed.Contacts {
		rec, err := NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("book: seed contact %q: %w", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, fmt.Errorf("book: seed contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := rec.SetBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("book: seed contact %q: %w", c.Name, err)
			}
		}
		b.Add(rec)
	}
	return b, nil
}
