package clock_test

import (
	"testing"
	"time"

	"daywork/internal/clock"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  clock.Time
	}{
		{"21:07:33", clock.Time{Hour: 21, Minute: 7, Second: 33}},
		{"9", clock.Time{Hour: 9}},
		{"9:15", clock.Time{Hour: 9, Minute: 15}},
		{"09:15:20", clock.Time{Hour: 9, Minute: 15, Second: 20}},
		{"0:00", clock.Time{}},
		{"23:59:59", clock.Time{Hour: 23, Minute: 59, Second: 59}},
		{"12:00 am", clock.Time{Hour: 0}},
		{"12:00 pm", clock.Time{Hour: 12}},
		{"9 am", clock.Time{Hour: 9}},
		{"9 pm", clock.Time{Hour: 21}},
		{"9:15 PM", clock.Time{Hour: 21, Minute: 15}},
		{"  9:15 pm  ", clock.Time{Hour: 21, Minute: 15}},
	}
	for _, tt := range tests {
		got, err := clock.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"25:00",
		"12:60",
		"9:15:60",
		"13 am",
		"0 pm",
		"abc",
		"9:xx",
		"1:2:3:4",
		"-1:00",
	}
	for _, input := range inputs {
		if _, err := clock.Parse(input); err == nil {
			t.Errorf("Parse(%q) = nil error, want failure", input)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"8:30", 8*3600 + 30*60},
		{"08:30:00", 8*3600 + 30*60},
		{"9", 9 * 3600},
		{"10:15:30", 10*3600 + 15*60 + 30},
		{"0", 0},
		// Durations are not clock times: hours may exceed 23.
		{"100:00:00", 100 * 3600},
	}
	for _, tt := range tests {
		got, err := clock.ParseDuration(tt.input)
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseDurationErrors(t *testing.T) {
	inputs := []string{"", "8:60", "8:30:60", "-1", "1:2:3:4", "8:", "x:30"}
	for _, input := range inputs {
		if _, err := clock.ParseDuration(input); err == nil {
			t.Errorf("ParseDuration(%q) = nil error, want failure", input)
		}
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{8*3600 + 30*60, "08:30:00"},
		{-90, "-00:01:30"},
		{100 * 3600, "100:00:00"},
	}
	for _, tt := range tests {
		got := clock.FormatHMS(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatHMS(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00:00", "08:30:00", "23:59:59", "27:10:05"} {
		secs, err := clock.ParseDuration(s)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", s, err)
		}
		if got := clock.FormatHMS(secs); got != s {
			t.Errorf("FormatHMS(ParseDuration(%q)) = %q", s, got)
		}
	}
}

func TestTimeAt(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 3, 9, 0, time.UTC)
	at := clock.Time{Hour: 9, Minute: 15}.At(day)
	want := time.Date(2026, 8, 31, 9, 15, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("At = %v, want %v", at, want)
	}
}

func TestTimeString(t *testing.T) {
	got := clock.Time{Hour: 9, Minute: 5, Second: 1}.String()
	if got != "09:05:01" {
		t.Errorf("String = %q, want %q", got, "09:05:01")
	}
}
