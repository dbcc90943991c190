// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"fmt"
	"time"
)

const (
	// isoDateLayout is the ISO-8601 date form used by FLEX statements.
	isoDateLayout = "2006-01-02"
	// compactDateLayout is the 8-digit date form used interchangeably by FLEX statements.
	compactDateLayout = "20060102"
)

// Date represents a calendar date without a time zone, as reported in
// FLEX statement attributes.
type Date struct {
	// Year is the year (e.g., 2025).
	Year int
	// Month is the month of the year.
	Month time.Month
	// Day is the day of the month.
	Day int
}

// ParseDate parses a FLEX date attribute value.
//
// FLEX statements use two date forms interchangeably: ISO-8601 (2025-01-15)
// and compact (20250115). Both decode to the same Date. Any other form is
// an error.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(isoDateLayout, value)
	if err != nil {
		t, err = time.Parse(compactDateLayout, value)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYYMMDD", value)
		}
	}
	return TimeToDate(t), nil
}

// TimeToDate returns the Date in which a time occurs in that time's location.
func TimeToDate(t time.Time) Date {
	var d Date
	d.Year, d.Month, d.Day = t.Date()
	return d
}

// In returns the time corresponding to midnight at the start of the date
// in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether the date is a real calendar date.
func (d Date) IsValid() bool {
	return TimeToDate(d.In(time.UTC)) == d
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d occurs before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d occurs after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// String returns the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler, producing the ISO-8601 form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting both FLEX
// date forms.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
