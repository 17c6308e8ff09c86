package datetime

import (
	"testing"
	"time"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		dateStr  string
		expected string
	}{
		{
			name:     "Valid date",
			layout:   DateLayout,
			dateStr:  "2025-01-15",
			expected: "2025-01-15",
		},
		{
			name:     "Leap day",
			layout:   DateLayout,
			dateStr:  "2024-02-29",
			expected: "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(tt.layout, tt.dateStr)
			if result.Format(tt.layout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(tt.layout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(DateLayout, "invalid-date")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Plain date", "2025-03-01", "2025-03-01", false},
		{"Padded date", " 2025-03-01 ", "2025-03-01", false},
		{"Timestamp", "2025-03-01T10:30:00Z", "2025-03-01", false},
		{"Garbage", "yesterday", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if FormatDate(result) != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, FormatDate(result), tt.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a        time.Time
		expected int
	}{
		{"Same instant", base, 0},
		{"Half a day later", base.Add(12 * time.Hour), 0},
		{"Thirty days later", base.AddDate(0, 0, 30), 30},
		{"Almost two days later", base.Add(47 * time.Hour), 1},
		{"Half a day earlier", base.Add(-12 * time.Hour), 0},
		{"Ten days earlier", base.AddDate(0, 0, -10), -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, base); got != tt.expected {
				t.Errorf("DaysBetween() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestPeriodStarts(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 6, 18, 15, 45, 0, 0, time.UTC)

	if got := FormatDate(StartOfDay(now)); got != "2025-06-18" {
		t.Errorf("StartOfDay() = %s", got)
	}
	if !StartOfDay(now).Equal(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay() kept a time component")
	}
	if got := FormatDate(StartOfWeek(now)); got != "2025-06-15" {
		t.Errorf("StartOfWeek() = %s, expected the preceding Sunday", got)
	}
	if got := FormatDate(StartOfMonth(now)); got != "2025-06-01" {
		t.Errorf("StartOfMonth() = %s", got)
	}

	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	if got := FormatDate(StartOfWeek(sunday)); got != "2025-06-15" {
		t.Errorf("StartOfWeek(sunday) = %s", got)
	}
}

func TestAddDays(t *testing.T) {
	start := MustParseTime(DateLayout, "2025-01-31")
	if got := FormatDate(AddDays(start, 30)); got != "2025-03-02" {
		t.Errorf("AddDays() = %s, expected 2025-03-02", got)
	}
}
