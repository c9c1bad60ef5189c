package parse

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		order DateOrder
		want  time.Time
		ok    bool
	}{
		{"01/02/2024", DayMonthYear, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"1/2/24", DayMonthYear, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"1-2-24", MonthDayYear, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"31.12.2023", DayMonthYear, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2024", DayMonthYear, time.Time{}, false},
		{"13/13/2024", DayMonthYear, time.Time{}, false},
		{"00/01/2024", DayMonthYear, time.Time{}, false},
		{"1/2", DayMonthYear, time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.in, tt.order)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q, %s) = %v, %v; want %v, %v", tt.in, tt.order, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in           string
		hour, minute int
		second       int
		ok           bool
	}{
		{"10:00", 10, 0, 0, true},
		{"9:05:30", 9, 5, 30, true},
		{"12:15 AM", 0, 15, 0, true},
		{"12:15 PM", 12, 15, 0, true},
		{"1:00 pm", 13, 0, 0, true},
		{"11:59 p.m.", 23, 59, 0, true},
		{"7:00 am", 7, 0, 0, true},
		{"24:00", 0, 0, 0, false},
		{"13:00 PM", 0, 0, 0, false},
		{"10:60", 0, 0, 0, false},
		{"noon", 0, 0, 0, false},
	}

	for _, tt := range tests {
		h, m, s, ok := ParseClock(tt.in)
		if ok != tt.ok || h != tt.hour || m != tt.minute || s != tt.second {
			t.Errorf("ParseClock(%q) = %d:%d:%d %v", tt.in, h, m, s, ok)
		}
	}
}

func TestParseDateOrder(t *testing.T) {
	if o, err := ParseDateOrder(""); err != nil || o != DayMonthYear {
		t.Errorf("empty = %q, %v", o, err)
	}
	if o, err := ParseDateOrder("MDY"); err != nil || o != MonthDayYear {
		t.Errorf("MDY = %q, %v", o, err)
	}
	if _, err := ParseDateOrder("ymd"); err == nil {
		t.Error("expected error for ymd")
	}
}
