package field

import (
	"errors"
	"testing"
	"time"
)

func TestNewName_TrimsWhitespace(t *testing.T) {
	n, err := NewName("  Alice  ")
	if err != nil {
		t.Fatalf("NewName() error = %v", err)
	}
	if n.Value() != "Alice" {
		t.Errorf("Value() = %q, want %q", n.Value(), "Alice")
	}
}

func TestNewName_RejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NewName(input)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("NewName(%q) error = %v, want ErrEmptyName", input, err)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0501234567", true},
		{"1234567890", true},
		{"123456789", false},    // too short
		{"12345678901", false},  // too long
		{"050123456a", false},   // letter
		{"050-123-45", false},   // punctuation
		{"", false},
		{"٠٥٠١٢٣٤٥٦٧", false}, // non-ASCII digits
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.input); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewPhone(t *testing.T) {
	p, err := NewPhone("0501234567")
	if err != nil {
		t.Fatalf("NewPhone() error = %v", err)
	}
	if p.Value() != "0501234567" {
		t.Errorf("Value() = %q, want %q", p.Value(), "0501234567")
	}

	if _, err := NewPhone("123"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("NewPhone(invalid) error = %v, want ErrInvalidPhone", err)
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "24.06.1990", false},
		{"leap day", "29.02.2000", false},
		{"impossible date", "30.02.1990", true},
		{"wrong separator", "24-06-1990", true},
		{"ISO order", "1990.06.24", true},
		{"empty", "", true},
		{"garbage", "birthday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBirthday) {
					t.Fatalf("NewBirthday(%q) error = %v, want ErrInvalidBirthday", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBirthday(%q) error = %v", tt.input, err)
			}
			if b.Value() != tt.input {
				t.Errorf("Value() = %q, want %q", b.Value(), tt.input)
			}
		})
	}
}

func TestBirthday_Next(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     time.Time
	}{
		{"later this year", "24.06.1990", day(2026, time.January, 10), day(2026, time.June, 24)},
		{"today counts", "24.06.1990", day(2026, time.June, 24), day(2026, time.June, 24)},
		{"already passed", "24.06.1990", day(2026, time.July, 1), day(2027, time.June, 24)},
		{"rolls over year boundary", "02.01.1985", day(2026, time.December, 28), day(2027, time.January, 2)},
		{"leap day in common year", "29.02.2000", day(2026, time.January, 1), day(2026, time.March, 1)},
		{"leap day in leap year", "29.02.2000", day(2028, time.January, 1), day(2028, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.birthday)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.Next(tt.today); !got.Equal(tt.want) {
				t.Errorf("Next(%v) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}
}

func TestBirthday_NextIgnoresTimeOfDay(t *testing.T) {
	b, err := NewBirthday("24.06.1990")
	if err != nil {
		t.Fatal(err)
	}
	// Late in the evening on the birthday itself should still count as today.
	now := time.Date(2026, time.June, 24, 23, 45, 0, 0, time.UTC)
	want := time.Date(2026, time.June, 24, 0, 0, 0, 0, time.UTC)
	if got := b.Next(now); !got.Equal(want) {
		t.Errorf("Next(%v) = %v, want %v", now, got, want)
	}
}
