package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// stampPrefix matches the date, time and delimiter that open every
// exported line, in either layout.
const stampPrefix = `^\[?(\d{1,2}[/.\-]\d{1,2}[/.\-](?:\d{4}|\d{2})),?\s+` +
	`(\d{1,2}:\d{2}(?::\d{2})?(?:[\s\x{00A0}\x{202F}]?[AaPp]\.?[Mm]\.?)?)` +
	`(?:\]\s*|\s+-\s+)`

// headerRe matches both export layouts:
//
//	01/02/2024, 10:00 - Alice: text
//	[1/2/24, 10:00:05 PM] Alice: text
//
// Groups: 1=date, 2=time, 3=sender, 4=body. The sender is non-greedy so it
// ends at the first colon after the delimiter.
var headerRe = regexp.MustCompile(stampPrefix + `(.+?):\s?(.*)$`)

// eventRe matches stamped lines without a sender, such as
// "01/02/2024, 10:00 - Alice added Bob". Only tried after headerRe fails.
var eventRe = regexp.MustCompile(stampPrefix + `\S.*$`)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?(?:[\s\x{00A0}\x{202F}]?([AaPp])\.?[Mm]\.?)?$`)

type header struct {
	date   string
	time   string
	sender string
	body   string
}

func matchHeader(line string) (header, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return header{}, false
	}
	return header{date: m[1], time: m[2], sender: strings.TrimSpace(m[3]), body: m[4]}, true
}

// isEvent reports whether line is a stamped system event (member added,
// subject changed, joined via link) rather than a message or continuation.
func isEvent(line string) bool {
	return eventRe.MatchString(line)
}

type DateOrder string

const (
	DayMonthYear DateOrder = "dmy"
	MonthDayYear DateOrder = "mdy"
)

func ParseDateOrder(s string) (DateOrder, error) {
	switch DateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", DayMonthYear:
		return DayMonthYear, nil
	case MonthDayYear:
		return MonthDayYear, nil
	default:
		return "", fmt.Errorf("unknown date order %q (want dmy or mdy)", s)
	}
}

// ParseDate normalizes an exported date token such as 01/02/2024, 1-2-24 or
// 1.2.2024. Two-digit years are taken as 20YY.
func ParseDate(s string, order DateOrder) (time.Time, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if order == MonthDayYear {
		day, month = nums[1], nums[0]
	}
	if len(parts[2]) == 2 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject instead.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses an exported time token into 24h hour, minute and second.
func ParseClock(s string) (hour, minute, second int, ok bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if minute > 59 || second > 59 {
		return 0, 0, 0, false
	}

	switch strings.ToLower(m[4]) {
	case "":
		if hour > 23 {
			return 0, 0, 0, false
		}
	case "a":
		if hour < 1 || hour > 12 {
			return 0, 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return 0, 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}
	return hour, minute, second, true
}

// Hour returns the hour-of-day bucket for an exported time token.
func Hour(s string) (int, bool) {
	h, _, _, ok := ParseClock(s)
	return h, ok
}

func timestamp(date, clock string, order DateOrder) time.Time {
	day, ok := ParseDate(date, order)
	if !ok {
		return time.Time{}
	}
	h, m, s, ok := ParseClock(clock)
	if !ok {
		return day
	}
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}
