package period

import (
	"fmt"
	"time"
)

// Period is a calendar month used to scope aggregation.
type Period struct {
	Year  int
	Month time.Month
}

func New(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month %d out of range 1-12", month)
	}

	if year < 1 {
		return Period{}, fmt.Errorf("year %d out of range", year)
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

// Of returns the period containing t, in t's location.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start is the first instant of the month (UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant of the following month, exclusive.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether the calendar day of t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) Next() Period {
	return Of(p.Start().AddDate(0, 1, 0))
}

func (p Period) Prev() Period {
	return Of(p.Start().AddDate(0, -1, 0))
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
