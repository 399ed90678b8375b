package book

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/smileynet/rolodex/internal/field"
)

func seedFS(t *testing.T, content string) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"contacts.yaml": &fstest.MapFile{Data: []byte(content)},
	}
}

func TestLoadSeed(t *testing.T) {
	fsys := seedFS(t, `
contacts:
  - name: Alice
    phones:
      - "0501234567"
      - "0677654321"
    birthday: "24.06.1990"
  - name: Bob
    phones: []
`)

	b, err := LoadSeed(fsys, "contacts.yaml")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	alice, ok := b.Find("Alice")
	if !ok {
		t.Fatal("Find(Alice) = not found")
	}
	if got := len(alice.Phones()); got != 2 {
		t.Errorf("Alice phones = %d, want 2", got)
	}
	bd, ok := alice.Birthday()
	if !ok {
		t.Fatal("Alice birthday not set")
	}
	if bd.Value() != "24.06.1990" {
		t.Errorf("Alice birthday = %q, want %q", bd.Value(), "24.06.1990")
	}

	bob, ok := b.Find("Bob")
	if !ok {
		t.Fatal("Find(Bob) = not found")
	}
	if got := len(bob.Phones()); got != 0 {
		t.Errorf("Bob phones = %d, want 0", got)
	}
	if _, ok := bob.Birthday(); ok {
		t.Error("Bob birthday set, want unset")
	}
}

func TestLoadSeed_EmptyFile(t *testing.T) {
	fsys := seedFS(t, "")

	b, err := LoadSeed(fsys, "contacts.yaml")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{}

	_, err := LoadSeed(fsys, "contacts.yaml")
	if err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestLoadSeed_UnknownField(t *testing.T) {
	fsys := seedFS(t, `
contacts:
  - name: Alice
    nickname: Al
`)

	_, err := LoadSeed(fsys, "contacts.yaml")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadSeed_InvalidPhone(t *testing.T) {
	fsys := seedFS(t, `
contacts:
  - name: Alice
    phones:
      - "123"
`)

	_, err := LoadSeed(fsys, "contacts.yaml")
	if !errors.Is(err, field.ErrInvalidPhone) {
		t.Fatalf("error = %v, want ErrInvalidPhone", err)
	}
	if !strings.Contains(err.Error(), "Alice") {
		t.Errorf("error = %q, want to name the offending contact", err)
	}
}

func TestLoadSeed_InvalidBirthday(t *testing.T) {
	fsys := seedFS(t, `
contacts:
  - name: Alice
    birthday: "1990-06-24"
`)

	_, err := LoadSeed(fsys, "contacts.yaml")
	if !errors.Is(err, field.ErrInvalidBirthday) {
		t.Fatalf("error = %v, want ErrInvalidBirthday", err)
	}
}

func TestLoadSeed_EmptyName(t *testing.T) {
	fsys := seedFS(t, `
contacts:
  - name: "   "
`)

	_, err := LoadSeed(fsys, "contacts.yaml")
	if !errors.Is(err, field.ErrEmptyName) {
		t.Fatalf("error = %v, want ErrEmptyName", err)
	}
}
