package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a calendar month key such as "2021-02".
type Month struct {
	Year  int
	Month time.Month
}

// FormatMonth returns a month key like "2021-02".
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonth parses "2021-02" into a Month.
func ParseMonth(s string) (Month, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Month{}, fmt.Errorf("invalid month format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in month %q: %w", s, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month out of range in %q", s)
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// String formats the month key.
func (m Month) String() string {
	return FormatMonth(m.Year, m.Month)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m is strictly earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}
