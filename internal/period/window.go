// Package period computes pay-cycle windows. A period runs from one payday
// to the day before the next one, so it straddles two calendar months.
package period

import (
	"errors"
	"fmt"
	"time"
)

// PaydayOfMonth is the nominal day salaries are paid.
const PaydayOfMonth = 21

// ErrInvertedRange is returned when the end month precedes the start month.
var ErrInvertedRange = errors.New("end month precedes start month")

// Payday returns the payday for a calendar month: the 21st, moved back to the
// preceding Friday when it falls on a weekend.
func Payday(year int, month time.Month) time.Time {
	d := time.Date(year, month, PaydayOfMonth, 0, 0, 0, 0, time.UTC)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// Window is one analysis period. Start and End are dates at midnight UTC and
// both are inclusive.
type Window struct {
	Label string
	Start time.Time
	End   time.Time
}

// ForMonth returns the window that starts on the given month's payday.
func ForMonth(m Month) Window {
	next := m.Next()
	return Window{
		Label: m.String(),
		Start: Payday(m.Year, m.Month),
		End:   Payday(next.Year, next.Month).AddDate(0, 0, -1),
	}
}

// Contains reports whether t falls on a date inside the window.
func (w Window) Contains(t time.Time) bool {
	d := dateOf(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the inclusive number of days in the window.
func (w Window) Days() int {
	return daysBetween(w.Start, w.End) + 1
}

// DaysFrom returns the number of days in the window on or after now's date.
func (w Window) DaysFrom(now time.Time) int {
	d := dateOf(now)
	switch {
	case d.After(w.End):
		return 0
	case !d.After(w.Start):
		return w.Days()
	default:
		return daysBetween(d, w.End) + 1
	}
}

// Windows enumerates the windows for every month from start to end
// inclusive, in chronological order.
func Windows(start, end Month) ([]Window, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvertedRange, start, end)
	}
	var out []Window
	for m := start; ; m = m.Next() {
		out = append(out, ForMonth(m))
		if m == end {
			break
		}
	}
	return out, nil
}

// ParseRange parses two month keys and enumerates their windows.
func ParseRange(start, end string) ([]Window, error) {
	s, err := ParseMonth(start)
	if err != nil {
		return nil, fmt.Errorf("parsing start month: %w", err)
	}
	e, err := ParseMonth(end)
	if err != nil {
		return nil, fmt.Errorf("parsing end month: %w", err)
	}
	return Windows(s, e)
}

// Find returns the first window containing t.
func Find(windows []Window, t time.Time) (int, bool) {
	for i, w := range windows {
		if w.Contains(t) {
			return i, true
		}
	}
	return -1, false
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
