package validation

import (
	"testing"
	"time"

	"exercisetracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)

func TestValidateExercise_Valid(t *testing.T) {
	ex, errs := ValidateExercise(ExerciseInput{
		Description: "morning run",
		Duration:    "30",
		Date:        "2024-01-15",
	}, testNow)

	assert.Empty(t, errs)
	assert.Equal(t, "morning run", ex.Description)
	assert.Equal(t, 30.0, ex.Duration)
	assert.Equal(t, "Mon Jan 15 2024", ex.Date)
}

func TestValidateExercise_DateDefaultsToNow(t *testing.T) {
	ex, errs := ValidateExercise(ExerciseInput{
		Description: "swim",
		Duration:    "45.5",
	}, testNow)

	assert.Empty(t, errs)
	assert.Equal(t, 45.5, ex.Duration)
	assert.Equal(t, testNow.Format(domain.DateLayout), ex.Date)
	assert.Equal(t, "Thu Mar 07 2024", ex.Date)
}

func TestValidateExercise_Description(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"missing", "", true},
		{"whitespace only", "   ", true},
		{"digits only", "12345", true},
		{"single digit", "7", true},
		{"digits with letters ok", "5k run", false},
		{"plain text ok", "yoga", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateExercise(ExerciseInput{
				Description: tt.description,
				Duration:    "20",
			}, testNow)

			if tt.wantErr {
				assert.Equal(t, MsgDescriptionRequired, errs["description"])
			} else {
				assert.NotContains(t, errs, "description")
			}
		})
	}
}

func TestValidateExercise_Duration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		wantMsg  string
	}{
		{"missing", "", MsgDurationRequired},
		{"not a number", "abc", MsgDurationRequired},
		{"zero", "0", MsgDurationNotPositive},
		{"negative", "-5", MsgDurationNotPositive},
		{"positive ok", "12", ""},
		{"fractional ok", "0.5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateExercise(ExerciseInput{
				Description: "rowing",
				Duration:    tt.duration,
			}, testNow)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errs["duration"])
			} else {
				assert.NotContains(t, errs, "duration")
			}
		})
	}
}

func TestValidateExercise_Date(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"iso date ok", "2024-01-10", false},
		{"leap day ok", "2024-02-29", false},
		{"leap day in non-leap year", "2023-02-29", true},
		{"nonexistent day", "2024-02-30", true},
		{"wrong separator", "2024/01/10", true},
		{"not zero padded", "2024-1-5", true},
		{"us format", "01/10/2024", true},
		{"garbage", "not a date", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateExercise(ExerciseInput{
				Description: "cycling",
				Duration:    "60",
				Date:        tt.date,
			}, testNow)

			if tt.wantErr {
				assert.Equal(t, MsgDateInvalid, errs["date"])
			} else {
				assert.NotContains(t, errs, "date")
			}
		})
	}
}

func TestValidateExercise_LeapDayNormalized(t *testing.T) {
	ex, errs := ValidateExercise(ExerciseInput{
		Description: "long ride",
		Duration:    "90",
		Date:        "2024-02-29",
	}, testNow)

	assert.Empty(t, errs)
	assert.Equal(t, "Thu Feb 29 2024", ex.Date)
}

func TestValidateExercise_CollectsAllErrors(t *testing.T) {
	ex, errs := ValidateExercise(ExerciseInput{
		Description: "123",
		Duration:    "abc",
		Date:        "2024-13-01",
	}, testNow)

	assert.Len(t, errs, 3)
	assert.Equal(t, MsgDescriptionRequired, errs["description"])
	assert.Equal(t, MsgDurationRequired, errs["duration"])
	assert.Equal(t, MsgDateInvalid, errs["date"])
	// Errors mean no normalized value comes back.
	assert.Equal(t, domain.Exercise{}, ex)
}
