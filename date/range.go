package date

import (
	"fmt"
	"strings"
)

// DaysPerYear is the year length of the Actual/365 Fixed day count.
const DaysPerYear = 365

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range from 'from' to 'to'.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// YearsFrom returns the range starting on 'from' and lasting n calendar years.
func YearsFrom(from Date, n int) Range { return Range{From: from, To: from.AddYears(n)} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days elapsed from From to To. It is negative
// when To is before From.
func (r Range) Days() int { return r.From.DaysUntil(r.To) }

// Years returns the length of the range in years, counted Actual/365 Fixed:
// elapsed days divided by 365.
func (r Range) Years() float64 { return float64(r.Days()) / DaysPerYear }

// String returns the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// ParseRange parses a range written as "from..to".
func ParseRange(str string) (Range, error) {
	from, to, ok := strings.Cut(str, "..")
	if !ok {
		return Range{}, fmt.Errorf("invalid range %q want format \"from..to\"", str)
	}
	f, err := Parse(from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start: %w", err)
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end: %w", err)
	}
	return Range{From: f, To: t}, nil
}
