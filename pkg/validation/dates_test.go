package validation_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/validation"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISO date", "2020-01-15", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"US slash date", "01/15/2020", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"slash year first", "2020/01/15", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"month-year with dash", "01-2020", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"month-year with slash", "03/2019", time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"year-month", "2020-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.NormalizeDate("start_date", tc.input)
			assert.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestNormalizeDateSnapsToFirstOfMonth(t *testing.T) {
	got, err := validation.NormalizeDate("end_date", "06/2021")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 2021, got.Year())
}

func TestNormalizeDateIdempotent(t *testing.T) {
	// A value that already went through normalization must survive a second pass.
	first, err := validation.NormalizeDate("start_date", "03/2019")
	assert.NoError(t, err)

	second, err := validation.NormalizeDate("start_date", first.Format("2006-01-02"))
	assert.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestNormalizeDateFallbackParser(t *testing.T) {
	// Formats outside the known layouts still parse via the permissive fallback.
	got, err := validation.NormalizeDate("start_date", "Jan 15, 2020")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	_, err := validation.NormalizeDate("start_date", "not-a-date")
	assert.Error(t, err)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "Invalid date format: not-a-date", appErr.Message)
	assert.Contains(t, appErr.Fields, "start_date")
}
