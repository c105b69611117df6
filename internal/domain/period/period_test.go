package period

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	loc := time.Local
	at := time.Date(2025, 3, 10, 14, 30, 45, 0, loc)

	window := Day(at)

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc)

	if !window.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", window.End, wantEnd)
	}
}

func TestWindow_Contains(t *testing.T) {
	loc := time.Local
	window := Day(time.Date(2025, 3, 10, 12, 0, 0, 0, loc))

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{
			name:     "midnight belongs to the day",
			at:       time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			expected: true,
		},
		{
			name:     "last millisecond belongs to the day",
			at:       time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc),
			expected: true,
		},
		{
			name:     "next midnight belongs to the next day",
			at:       time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
			expected: false,
		},
		{
			name:     "instant before midnight belongs to the previous day",
			at:       time.Date(2025, 3, 9, 23, 59, 59, 999000000, loc),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.at); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.expected)
			}
		})
	}
}

func TestLastSevenDays(t *testing.T) {
	loc := time.Local
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, loc)

	window := LastSevenDays(now)

	wantStart := time.Date(2025, 3, 4, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc)

	if !window.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", window.End, wantEnd)
	}
	if got := len(window.Days()); got != 7 {
		t.Errorf("expected 7 days in window, got %d", got)
	}
}

func TestMonth(t *testing.T) {
	loc := time.Local

	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{
			name:      "march",
			year:      2025,
			month:     time.March,
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 3, 31, 23, 59, 59, 999000000, loc),
			wantDays:  31,
		},
		{
			name:      "february non leap",
			year:      2025,
			month:     time.February,
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 2, 28, 23, 59, 59, 999000000, loc),
			wantDays:  28,
		},
		{
			name:      "february leap",
			year:      2024,
			month:     time.February,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999000000, loc),
			wantDays:  29,
		},
		{
			name:      "december rolls into next year",
			year:      2025,
			month:     time.December,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 12, 31, 23, 59, 59, 999000000, loc),
			wantDays:  31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Month(tt.year, tt.month, loc)

			if !window.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", window.Start, tt.wantStart)
			}
			if !window.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", window.End, tt.wantEnd)
			}
			if got := len(window.Days()); got != tt.wantDays {
				t.Errorf("expected %d days, got %d", tt.wantDays, got)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	at := time.Date(2025, 3, 5, 23, 59, 0, 0, time.Local)

	if got := DayKey(at); got != "2025-03-05" {
		t.Errorf("DayKey = %q, want %q", got, "2025-03-05")
	}
}

func TestParseDayKey(t *testing.T) {
	parsed, err := ParseDayKey("2025-03-05")
	if err != nil {
		t.Fatalf("ParseDayKey returned error: %v", err)
	}

	want := time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)
	if !parsed.Equal(want) {
		t.Errorf("ParseDayKey = %v, want %v", parsed, want)
	}

	// Round trip.
	if got := DayKey(parsed); got != "2025-03-05" {
		t.Errorf("DayKey(ParseDayKey(...)) = %q, want %q", got, "2025-03-05")
	}

	if _, err := ParseDayKey("05/03/2025"); err == nil {
		t.Error("expected error for malformed day key")
	}
}

func TestWindow_Days(t *testing.T) {
	loc := time.Local
	window := Window{
		Start: time.Date(2025, 3, 8, 0, 0, 0, 0, loc),
		End:   time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc),
	}

	days := window.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	for i, want := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		if got := DayKey(days[i]); got != want {
			t.Errorf("days[%d] = %q, want %q", i, got, want)
		}
	}
}
