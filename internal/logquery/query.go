// Package logquery filters, sorts and caps a user's exercise log in
// process. The store hands over the full log; everything else happens
// here, keeping query semantics independent of the persistence engine.
package logquery

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"exercisetracker/internal/domain"
)

// ErrInvalidDateFormat is the only error this engine raises: a from/to
// parameter that does not parse as a date.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Params are the optional query parameters, kept as raw strings: from
// and to are date bounds, limit caps the returned page.
type Params struct {
	From  string
	To    string
	Limit string
}

// Result is the filtered page plus the count of all matches. Count is
// taken before the limit is applied, so a truncated page still reports
// the size of the full matched range.
type Result struct {
	Log   []domain.Exercise
	Count int
}

// Layouts accepted for from/to values. Deliberately looser than the
// strict YYYY-MM-DD rule applied at creation time: any recognizable
// date string bounds the range.
var queryLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	domain.DateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// Run applies the from/to range filter, sorts ascending by date and
// truncates to the limit. The input slice is never mutated.
func Run(log []domain.Exercise, p Params) (Result, error) {
	var from, to time.Time
	hasFrom, hasTo := p.From != "", p.To != ""

	if hasFrom {
		t, err := parseQueryDate(p.From)
		if err != nil {
			return Result{}, ErrInvalidDateFormat
		}
		from = startOfDay(t)
	}
	if hasTo {
		t, err := parseQueryDate(p.To)
		if err != nil {
			return Result{}, ErrInvalidDateFormat
		}
		to = endOfDay(t)
	}

	type dated struct {
		entry domain.Exercise
		at    time.Time
	}

	var matched []dated
	for _, entry := range log {
		at, err := time.Parse(domain.DateLayout, entry.Date)
		if err != nil {
			// Stored dates are normalized at creation, so this only
			// happens for documents written outside the API. Such an
			// entry cannot be placed on the timeline: keep it when the
			// query is unbounded, skip it when a bound is active.
			if hasFrom || hasTo {
				continue
			}
			matched = append(matched, dated{entry: entry})
			continue
		}
		if hasFrom && at.Before(from) {
			continue
		}
		if hasTo && at.After(to) {
			continue
		}
		matched = append(matched, dated{entry: entry, at: at})
	}

	// Stable: entries on the same date keep their insertion order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].at.Before(matched[j].at)
	})

	count := len(matched)

	if n, ok := parseLimit(p.Limit); ok && n < len(matched) {
		matched = matched[:n]
	}

	page := make([]domain.Exercise, len(matched))
	for i, d := range matched {
		page[i] = d.entry
	}
	return Result{Log: page, Count: count}, nil
}

func parseQueryDate(s string) (time.Time, error) {
	for _, layout := range queryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// parseLimit reports whether a usable limit was given. A missing,
// non-numeric or negative value means no limit; zero is a valid limit
// and yields an empty page.
func parseLimit(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
