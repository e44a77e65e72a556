package seasonutil

import (
	"testing"
	"time"
)

func TestSeasonStartYear(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2024-10-01", 2024},
		{"2024-12-25", 2024},
		{"2025-01-15", 2024},
		{"2025-06-30", 2024},
		{"2025-09-30", 2024},
		{"2025-10-01", 2025},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.date, err)
		}
		if got := SeasonStartYear(d); got != tc.want {
			t.Fatalf("SeasonStartYear(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(2024); got != "2024-2025" {
		t.Fatalf("Label(2024) = %q, want 2024-2025", got)
	}
	if got := Label(1999); got != "1999-2000" {
		t.Fatalf("Label(1999) = %q, want 1999-2000", got)
	}
}
