package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2020, d.Year())

	for _, input := range []string{"", "01-01-2020", "2020-13-01", "2020-02-30", "yesterday"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestChronologicalDecimalAge_SameDate(t *testing.T) {
	assert.Equal(t, 0.0, ChronologicalDecimalAge(date("2020-01-01"), date("2020-01-01")))
}

func TestChronologicalDecimalAge_WholeYears(t *testing.T) {
	assert.Equal(t, 1.0, ChronologicalDecimalAge(date("2020-01-01"), date("2021-01-01")))
	assert.Equal(t, 10.0, ChronologicalDecimalAge(date("2010-05-17"), date("2020-05-17")))
}

func TestChronologicalDecimalAge_OneYearSpanCrossingLeapDay(t *testing.T) {
	// 366 elapsed days, still exactly one calendar year
	assert.Equal(t, 1.0, ChronologicalDecimalAge(date("2019-06-01"), date("2020-06-01")))
}

func TestChronologicalDecimalAge_Fraction(t *testing.T) {
	// 182 days into the 366-day year 2020
	assert.InDelta(t, 182.0/366.0, ChronologicalDecimalAge(date("2020-01-01"), date("2020-07-01")), 1e-9)
	// 181 days into the 365-day year 2019
	assert.InDelta(t, 181.0/365.0, ChronologicalDecimalAge(date("2019-01-01"), date("2019-07-01")), 1e-9)
}

func TestChronologicalDecimalAge_NegativeSpan(t *testing.T) {
	forward := ChronologicalDecimalAge(date("2020-01-01"), date("2021-03-15"))
	backward := ChronologicalDecimalAge(date("2021-03-15"), date("2020-01-01"))
	assert.Equal(t, -forward, backward)
	assert.Less(t, backward, 0.0)
}

func TestChronologicalCalendarAge(t *testing.T) {
	tests := []struct {
		name         string
		birth, obs   string
		expected     CalendarAge
		expectedText string
	}{
		{"one year", "2020-01-01", "2021-01-01", CalendarAge{1, 0, 0}, "1 year, 0 months, 0 days"},
		{"plural", "2018-01-01", "2020-03-05", CalendarAge{2, 2, 4}, "2 years, 2 months, 4 days"},
		{"day borrow", "2020-01-15", "2020-03-10", CalendarAge{0, 1, 24}, "0 years, 1 month, 24 days"},
		{"month end clamp", "2020-01-31", "2020-03-01", CalendarAge{0, 1, 1}, "0 years, 1 month, 1 day"},
		{"leap day birth", "2020-02-29", "2021-03-01", CalendarAge{1, 0, 1}, "1 year, 0 months, 1 day"},
		{"same date", "2020-06-15", "2020-06-15", CalendarAge{0, 0, 0}, "0 years, 0 months, 0 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := ChronologicalCalendarAge(date(tt.birth), date(tt.obs))
			assert.Equal(t, tt.expected, age)
			assert.Equal(t, tt.expectedText, age.String())
		})
	}
}

func TestChronologicalCalendarAge_NegativeSpan(t *testing.T) {
	age := ChronologicalCalendarAge(date("2021-03-05"), date("2020-01-01"))
	assert.Equal(t, CalendarAge{Years: -1, Months: -2, Days: -4}, age)
}

func TestNewGestation(t *testing.T) {
	g, err := NewGestation(28, 3)
	require.NoError(t, err)
	assert.Equal(t, Gestation{Weeks: 28, Days: 3}, g)

	invalid := []struct {
		name        string
		weeks, days int
	}{
		{"weeks too low", 21, 0},
		{"weeks too high", 45, 0},
		{"days negative", 30, -1},
		{"days too high", 30, 7},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGestation(tt.weeks, tt.days)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestEstimatedDateDelivery_Term(t *testing.T) {
	edd, err := EstimatedDateDelivery(date("2020-01-01"), Term)
	require.NoError(t, err)
	assert.Equal(t, date("2020-01-01"), edd)
}

func TestEstimatedDateDelivery_Preterm(t *testing.T) {
	// 28+0 is 12 weeks short of term
	edd, err := EstimatedDateDelivery(date("2020-01-01"), Gestation{Weeks: 28})
	require.NoError(t, err)
	assert.Equal(t, date("2020-01-01").AddDate(0, 0, 84), edd)

	// 25+3 is 102 days short of term
	edd, err = EstimatedDateDelivery(date("2020-01-01"), Gestation{Weeks: 25, Days: 3})
	require.NoError(t, err)
	assert.Equal(t, date("2020-01-01").AddDate(0, 0, 102), edd)
}

func TestEstimatedDateDelivery_PostTerm(t *testing.T) {
	edd, err := EstimatedDateDelivery(date("2020-01-15"), Gestation{Weeks: 42})
	require.NoError(t, err)
	assert.True(t, edd.Before(date("2020-01-15")))
}

func TestEstimatedDateDelivery_InvalidGestation(t *testing.T) {
	_, err := EstimatedDateDelivery(date("2020-01-01"), Gestation{Weeks: 50})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCorrectedDecimalAge(t *testing.T) {
	// born 12 weeks early, observed on the estimated date of delivery
	birth := date("2020-01-01")
	obs := birth.AddDate(0, 0, 84)
	age, err := CorrectedDecimalAge(birth, obs, Gestation{Weeks: 28})
	require.NoError(t, err)
	assert.Equal(t, 0.0, age)

	// corrected age is always below the chronological age for preterm birth
	obs = date("2021-01-01")
	age, err = CorrectedDecimalAge(birth, obs, Gestation{Weeks: 28})
	require.NoError(t, err)
	assert.Less(t, age, ChronologicalDecimalAge(birth, obs))
}
