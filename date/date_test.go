package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
	}{
		// Six digits: year + month, day defaulted to the 1st.
		{"202503", New(2025, time.March, 1)},
		{"202512", New(2025, time.December, 1)},
		{"199901", New(1999, time.January, 1)},

		// Eight digits: full day.
		{"20250315", New(2025, time.March, 15)},

		// Separated forms, with and without zero padding.
		{"2025/03/15", New(2025, time.March, 15)},
		{"2025/3/5", New(2025, time.March, 5)},
		{"2025.03.15", New(2025, time.March, 15)},
		{"2025-03-15", New(2025, time.March, 15)},
		{"2025-3-5", New(2025, time.March, 5)},

		// Partial year/month.
		{"2025/03", New(2025, time.March, 1)},
		{"2025-7", New(2025, time.July, 1)},

		// Surrounding whitespace is tolerated.
		{" 2025/03/15 ", New(2025, time.March, 15)},

		// Unparsable input yields the zero sentinel.
		{"", Date{}},
		{"n/a", Date{}},
		{"202513", Date{}},   // month 13
		{"基準日", Date{}},
		{"1234567", Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeZeroSortsFirst(t *testing.T) {
	unknown := Normalize("not a date")
	if !unknown.IsZero() {
		t.Fatalf("expected zero date, got %v", unknown)
	}
	if !unknown.Before(New(1900, time.January, 1)) {
		t.Errorf("zero date must sort before any real date")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2024, time.May, 10), New(2025, time.May, 10))

	tests := []struct {
		d    Date
		want bool
	}{
		{New(2024, time.May, 10), true},  // closed lower bound
		{New(2025, time.May, 10), true},  // closed upper bound
		{New(2024, time.November, 1), true},
		{New(2024, time.May, 9), false},
		{New(2025, time.May, 11), false},
		{Date{}, false}, // unparsable never matches
	}
	for _, tt := range tests {
		if got := r.Contains(tt.d); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestAddYears(t *testing.T) {
	d := New(2025, time.March, 31)
	if got := d.AddYears(-1); got != New(2024, time.March, 31) {
		t.Errorf("AddYears(-1) = %v", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
