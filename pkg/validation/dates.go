package validation

import (
	"time"

	"github.com/araddon/dateparse"

	"go-resume-builder/pkg/apperror"
)

// dateLayouts are tried in order; the first successful parse wins. The three
// month-year layouts have no day component, so parsing yields the first day of
// the month. Order matters: "2020-01" must be claimed by the year-month layout,
// never by a permissive fallback guess.
var dateLayouts = []string{
	"2006-01-02", // full calendar date
	"01/02/2006", // US slash
	"02/01/2006", // European slash
	"2006/01/02", // year-first slash
	"01-2006",    // month-year
	"01/2006",    // month/year
	"2006-01",    // year-month
}

// NormalizeDate converts a loosely-formatted date string into a calendar date.
// Inputs that match none of the accepted layouts fall through to a permissive
// parse; if that also fails the result is a 422 naming the field and the raw
// input. Idempotent: the canonical output re-parses via the first layout.
func NormalizeDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if dt, err := time.Parse(layout, value); err == nil {
			return dt, nil
		}
	}

	if dt, err := dateparse.ParseAny(value); err == nil {
		return time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, apperror.MalformedDate(field, value)
}
