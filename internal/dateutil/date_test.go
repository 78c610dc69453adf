package dateutil

import "testing"

func TestShiftDate(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		delta int
		want  string
	}{
		{
			name:  "same day",
			day:   "2024-01-15",
			delta: 0,
			want:  "2024-01-15",
		},
		{
			name:  "forward within month",
			day:   "2024-01-15",
			delta: 3,
			want:  "2024-01-18",
		},
		{
			name:  "backward within month",
			day:   "2024-01-15",
			delta: -5,
			want:  "2024-01-10",
		},
		{
			name:  "forward across month boundary",
			day:   "2024-01-31",
			delta: 1,
			want:  "2024-02-01",
		},
		{
			name:  "backward across month boundary",
			day:   "2024-03-01",
			delta: -1,
			want:  "2024-02-29",
		},
		{
			name:  "backward across year boundary",
			day:   "2024-01-01",
			delta: -1,
			want:  "2023-12-31",
		},
		{
			name:  "forward across year boundary",
			day:   "2023-12-25",
			delta: 10,
			want:  "2024-01-04",
		},
		{
			name:  "leap day skipped in non-leap year",
			day:   "2023-02-28",
			delta: 1,
			want:  "2023-03-01",
		},
		{
			name:  "full streak window back",
			day:   "2024-01-07",
			delta: -6,
			want:  "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftDate(tt.day, tt.delta); got != tt.want {
				t.Errorf("ShiftDate(%q, %d) = %q, want %q", tt.day, tt.delta, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"january", 2024, 1, 31},
		{"february leap year", 2024, 2, 29},
		{"february non-leap year", 2023, 2, 28},
		{"february century non-leap", 1900, 2, 28},
		{"february 400-year leap", 2000, 2, 29},
		{"april", 2024, 4, 30},
		{"december", 2024, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestFirstOfMonth(t *testing.T) {
	if got := FirstOfMonth("2024-03-17"); got != "2024-03-01" {
		t.Errorf("FirstOfMonth = %q, want 2024-03-01", got)
	}
	if got := FirstOfMonth("2024-03-01"); got != "2024-03-01" {
		t.Errorf("FirstOfMonth of first = %q, want 2024-03-01", got)
	}
}

func TestLastOfMonth(t *testing.T) {
	if got := LastOfMonth("2024-02-10"); got != "2024-02-29" {
		t.Errorf("LastOfMonth = %q, want 2024-02-29", got)
	}
	if got := LastOfMonth("2023-02-10"); got != "2023-02-28" {
		t.Errorf("LastOfMonth = %q, want 2023-02-28", got)
	}
}

func TestPrevMonthFirst(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-03-17", "2024-02-01"},
		{"2024-01-05", "2023-12-01"},
		{"2024-02-01", "2024-01-01"},
	}

	for _, tt := range tests {
		if got := PrevMonthFirst(tt.day); got != tt.want {
			t.Errorf("PrevMonthFirst(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31", "2024-02-29"}
	for _, day := range valid {
		if !Valid(day) {
			t.Errorf("Valid(%q) = false, want true", day)
		}
	}

	invalid := []string{"", "2024-1-1", "2024-13-01", "2024-02-30", "24-01-01", "2024/01/01", "2024-01-01T00:00:00"}
	for _, day := range invalid {
		if Valid(day) {
			t.Errorf("Valid(%q) = true, want false", day)
		}
	}
}

func TestLexicographicOrderMatchesChronological(t *testing.T) {
	// Range filters and MAX aggregation depend on this holding across
	// month and year boundaries.
	days := []string{"2023-12-31", "2024-01-01", "2024-01-02", "2024-02-01", "2024-10-09", "2024-11-01"}
	for i := 1; i < len(days); i++ {
		if !(days[i-1] < days[i]) {
			t.Errorf("expected %q < %q", days[i-1], days[i])
		}
		if ShiftDate(days[i], 0) != days[i] {
			t.Errorf("round trip changed %q", days[i])
		}
	}
}
