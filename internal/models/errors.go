package models

import (
	"fmt"
	"strings"
)

// TimeParseError reports a Time cell that does not look like a clock time.
type TimeParseError struct {
	Text string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("unrecognized time %q: expected H:MM with optional AM/PM", e.Text)
}

// DateParseError reports a date+time string that survived the time check but
// could not be resolved to a timestamp. Attempts lists the named parse
// strategies that were tried, in order.
type DateParseError struct {
	Text     string
	Attempts []string
	Reason   string
}

func (e *DateParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid date/time %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("invalid date/time %q: no layout matched (tried %s)", e.Text, strings.Join(e.Attempts, ", "))
}

// LocationNotFoundError reports a schedule location with no entry in the
// field directory. This is a data-entry problem in the source workbook, so
// callers treat it as fatal rather than dropping the row.
type LocationNotFoundError struct {
	Location string
	Key      string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location %q (normalized %q) not found in field directory", e.Location, e.Key)
}

// RowError attaches sheet position and cell context to a row-level failure so
// warnings point back at the offending source cells.
type RowError struct {
	Sheet string
	Row   int
	Date  string
	Time  string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d (Date=%q Time=%q): %v", e.Sheet, e.Row, e.Date, e.Time, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
