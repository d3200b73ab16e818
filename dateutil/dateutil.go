// Package dateutil implements the small calendar-date value fend
// supports: parsing a handful of written formats and today/tomorrow/
// yesterday relative to a caller-supplied current time. There is no
// general-purpose date arithmetic here, matching the source system's
// own narrow Date type.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a plain calendar date with no time-of-day or zone.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func monthNum(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, m := range months {
		if m == name || (len(name) >= 3 && strings.HasPrefix(m, name)) {
			return i + 1, true
		}
	}
	return 0, false
}

// Parse accepts "2022-11-30", "30 November 2022", and "November 30 2022".
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if d, err := parseISO(s); err == nil {
		return d, nil
	}
	if d, ok := parseDayMonthYear(s); ok {
		return d, nil
	}
	if d, ok := parseMonthDayYear(s); ok {
		return d, nil
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

func parseISO(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("not an ISO date")
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, err
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

func parseDayMonthYear(s string) (Date, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Date{}, false
	}
	day, err := strconv.Atoi(strings.TrimSuffix(trimOrdinal(fields[0]), ","))
	if err != nil {
		return Date{}, false
	}
	month, ok := monthNum(fields[1])
	if !ok {
		return Date{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

func parseMonthDayYear(s string) (Date, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Date{}, false
	}
	month, ok := monthNum(fields[0])
	if !ok {
		return Date{}, false
	}
	day, err := strconv.Atoi(strings.TrimSuffix(trimOrdinal(fields[1]), ","))
	if err != nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

func trimOrdinal(s string) string {
	for _, suf := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf)
		}
	}
	return s
}

// Today returns the calendar date of now.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Next returns the following calendar day.
func (d Date) Next() Date { return d.shift(1) }

// Prev returns the preceding calendar day.
func (d Date) Prev() Date { return d.shift(-1) }

func (d Date) shift(days int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, days)
	y, m, dd := t.Date()
	return Date{Year: y, Month: int(m), Day: dd}
}

// String renders a date as "30 November 2022".
func (d Date) String() string {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	name := months[d.Month-1]
	return fmt.Sprintf("%d %s%s %d", d.Day, strings.ToUpper(name[:1]), name[1:], d.Year)
}
