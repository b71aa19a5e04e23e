package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseError reports a time or duration string that could not be parsed.
// The original input is kept so callers can annotate the offending field.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

// Time is a wall-clock time of day. It carries no date and no timezone;
// use At to pin it to a calendar day.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// At combines the clock time with the calendar day of t, in t's location.
func (c Time) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, c.Second, 0, day.Location())
}

// Seconds returns the offset from midnight in seconds.
func (c Time) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

var meridiemRe = regexp.MustCompile(`(?i)\s*(am|pm)\s*$`)

// Parse parses a clock time in 12-hour or 24-hour form.
// Accepted inputs: "9", "9:15", "9:15:30", "9 am", "9:15 pm", "21:07:33".
// Missing minute/second components default to zero.
func Parse(text string) (Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Time{}, &ParseError{Input: text, Reason: "empty time"}
	}

	meridiem := ""
	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		meridiem = strings.ToLower(m[1])
		s = strings.TrimSpace(meridiemRe.ReplaceAllString(s, ""))
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Time{}, &ParseError{Input: text, Reason: "too many ':' in time"}
	}

	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return Time{}, &ParseError{Input: text, Reason: "non-numeric time component"}
	}
	mm, ss := 0, 0
	if len(parts) >= 2 && parts[1] != "" {
		if mm, err = strconv.Atoi(parts[1]); err != nil {
			return Time{}, &ParseError{Input: text, Reason: "non-numeric time component"}
		}
	}
	if len(parts) == 3 && parts[2] != "" {
		if ss, err = strconv.Atoi(parts[2]); err != nil {
			return Time{}, &ParseError{Input: text, Reason: "non-numeric time component"}
		}
	}

	if mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return Time{}, &ParseError{Input: text, Reason: "minutes/seconds out of range"}
	}

	switch meridiem {
	case "am":
		if hh < 1 || hh > 12 {
			return Time{}, &ParseError{Input: text, Reason: "hour out of range for 12-hour time"}
		}
		if hh == 12 {
			hh = 0
		}
	case "pm":
		if hh < 1 || hh > 12 {
			return Time{}, &ParseError{Input: text, Reason: "hour out of range for 12-hour time"}
		}
		if hh != 12 {
			hh += 12
		}
	default:
		if hh < 0 || hh > 23 {
			return Time{}, &ParseError{Input: text, Reason: "hour out of range for 24-hour time"}
		}
	}

	return Time{Hour: hh, Minute: mm, Second: ss}, nil
}

// ParseDuration parses "H", "H:MM" or "H:MM:SS" into seconds.
// Unlike clock times, hours have no upper bound.
func ParseDuration(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ParseError{Input: text, Reason: "empty duration"}
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, &ParseError{Input: text, Reason: "too many ':' in duration"}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, &ParseError{Input: text, Reason: "non-numeric duration component"}
		}
		nums[i] = n
	}

	h := nums[0]
	m, sec := 0, 0
	if len(nums) >= 2 {
		m = nums[1]
	}
	if len(nums) == 3 {
		sec = nums[2]
	}

	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, &ParseError{Input: text, Reason: "invalid duration values"}
	}

	return h*3600 + m*60 + sec, nil
}

// FormatHMS formats a number of seconds as HH:MM:SS, zero-padded, with a
// leading "-" for negative values.
func FormatHMS(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, seconds/3600, (seconds%3600)/60, seconds%60)
}
