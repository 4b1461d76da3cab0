package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"exercisetracker/internal/domain"
)

// Field error messages returned to API clients.
const (
	MsgDescriptionRequired = "Description must be a string and is required."
	MsgDurationRequired    = "Duration must be a number and is required."
	MsgDurationNotPositive = "Duration must be a positive number."
	MsgDateInvalid         = "Date must be a valid date in YYYY-MM-DD format."
)

// ExerciseInput carries the raw, unparsed values of an exercise creation
// request. Duration arrives as text so that a non-numeric value can be
// reported as a field error instead of failing at the binding layer.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	isoDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateExercise checks all fields of in independently and either
// returns the normalized exercise or the collected field errors, never
// both. now supplies the default date when none is given.
func ValidateExercise(in ExerciseInput, now time.Time) (domain.Exercise, FieldErrors) {
	errs := FieldErrors{}

	description := strings.TrimSpace(in.Description)
	if description == "" || digitsOnly.MatchString(description) {
		errs["description"] = MsgDescriptionRequired
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(in.Duration), 64)
	if in.Duration == "" || err != nil {
		errs["duration"] = MsgDurationRequired
	} else if duration <= 0 {
		errs["duration"] = MsgDurationNotPositive
	}

	date := now
	if in.Date != "" {
		parsed, ok := parseISODate(in.Date)
		if !ok {
			errs["date"] = MsgDateInvalid
		}
		date = parsed
	}

	if len(errs) > 0 {
		return domain.Exercise{}, errs
	}

	return domain.Exercise{
		Description: description,
		Duration:    duration,
		Date:        date.Format(domain.DateLayout),
	}, nil
}

// parseISODate accepts only a literal YYYY-MM-DD string denoting a real
// calendar date. The round trip rejects values like "2024-02-30" that a
// lenient parser would roll over into the next month.
func parseISODate(s string) (time.Time, bool) {
	if !isoDate.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil || t.Format("2006-01-02") != s {
		return time.Time{}, false
	}
	return t, true
}
