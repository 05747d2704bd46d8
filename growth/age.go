// Copyright 2021 - 2026 The RCPCH Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package growth

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// termDays is the length of a full-term pregnancy in days (40 weeks).
const termDays = 280

// ParseDate parses a calendar date in the format YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Param: "date", Detail: "`" + s + "` is not a valid YYYY-MM-DD date"}
	}
	return d, nil
}

// Gestation is the gestational age at birth in completed weeks plus days.
type Gestation struct {
	Weeks int
	Days  int
}

// Term is a full-term gestation of 40 weeks and 0 days.
var Term = Gestation{Weeks: 40}

// NewGestation builds a validated Gestation.
func NewGestation(weeks, days int) (Gestation, error) {
	g := Gestation{Weeks: weeks, Days: days}
	return g, g.Validate()
}

// Validate rejects gestations outside plausible clinical bounds. Viability
// starts around 22 weeks and post-term delivery beyond 44 weeks is not a
// meaningful correction target.
func (g Gestation) Validate() error {
	if g.Weeks < 22 || g.Weeks > 44 {
		return &ValidationError{Param: "gestation weeks",
			Detail: "must be between 22 and 44, was " + strconv.Itoa(g.Weeks)}
	}
	if g.Days < 0 || g.Days > 6 {
		return &ValidationError{Param: "gestation days",
			Detail: "must be between 0 and 6, was " + strconv.Itoa(g.Days)}
	}
	return nil
}

func (g Gestation) days() int {
	return g.Weeks*7 + g.Days
}

// midnight truncates a date to midnight UTC so that calendar arithmetic is
// independent of any time component or zone the caller passed in.
func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// ChronologicalDecimalAge returns the elapsed time between two dates as a
// fraction of a year with exact calendar semantics: the whole years are
// counted by anniversary and the remainder is the elapsed fraction of the
// current anniversary-to-anniversary span. A one-year span is therefore
// exactly 1.0 whether or not it crosses a leap day.
//
// An observation date before the birth date yields a negative age. This is
// accepted rather than rejected because out-of-order dates occur during
// clinical record correction.
func ChronologicalDecimalAge(birthDate, observationDate time.Time) float64 {
	birthDate, observationDate = midnight(birthDate), midnight(observationDate)
	if observationDate.Before(birthDate) {
		return -ChronologicalDecimalAge(observationDate, birthDate)
	}

	years := observationDate.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(observationDate) {
		years--
		anniversary = birthDate.AddDate(years, 0, 0)
	}
	next := birthDate.AddDate(years+1, 0, 0)

	elapsed := observationDate.Sub(anniversary).Hours() / 24
	span := next.Sub(anniversary).Hours() / 24
	return float64(years) + elapsed/span
}

// CalendarAge is an elapsed time decomposed into whole years, months and
// days. For a negative span every component is negative.
type CalendarAge struct {
	Years  int
	Months int
	Days   int
}

func (a CalendarAge) String() string {
	return fmt.Sprintf("%s, %s, %s",
		pluralize(a.Years, "year"), pluralize(a.Months, "month"), pluralize(a.Days, "day"))
}

func pluralize(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ChronologicalCalendarAge decomposes the elapsed time between two dates
// into whole years, months and days by successive calendar subtraction,
// borrowing from the next coarser unit where a component would be negative.
// Month anchors clamp to the last day of short months, so one month after
// the 31st of January is the last day of February.
func ChronologicalCalendarAge(birthDate, observationDate time.Time) CalendarAge {
	birthDate, observationDate = midnight(birthDate), midnight(observationDate)
	if observationDate.Before(birthDate) {
		a := ChronologicalCalendarAge(observationDate, birthDate)
		return CalendarAge{Years: -a.Years, Months: -a.Months, Days: -a.Days}
	}

	months := (observationDate.Year()-birthDate.Year())*12 +
		int(observationDate.Month()) - int(birthDate.Month())
	anchor := addMonthsClamped(birthDate, months)
	if anchor.After(observationDate) {
		months--
		anchor = addMonthsClamped(birthDate, months)
	}
	days := int(observationDate.Sub(anchor).Hours() / 24)

	return CalendarAge{Years: months / 12, Months: months % 12, Days: days}
}

// addMonthsClamped advances a date by whole months, clamping the day to the
// length of the target month instead of letting it spill over.
func addMonthsClamped(d time.Time, months int) time.Time {
	year := d.Year() + (int(d.Month())-1+months)/12
	month := time.Month((int(d.Month())-1+months)%12 + 1)
	day := d.Day()
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EstimatedDateDelivery returns the date the child would have reached 40
// completed weeks gestation: the birth date advanced by the shortfall of the
// actual gestation against term. At term (40, 0) the birth date is returned
// unchanged.
func EstimatedDateDelivery(birthDate time.Time, gestation Gestation) (time.Time, error) {
	if err := gestation.Validate(); err != nil {
		return time.Time{}, err
	}
	return midnight(birthDate).AddDate(0, 0, termDays-gestation.days()), nil
}

// CorrectedDecimalAge returns the decimal age measured from the estimated
// date of delivery instead of the actual birth date, expressing age as if
// the child were born at term.
func CorrectedDecimalAge(birthDate, observationDate time.Time, gestation Gestation) (float64, error) {
	edd, err := EstimatedDateDelivery(birthDate, gestation)
	if err != nil {
		return 0, err
	}
	return ChronologicalDecimalAge(edd, observationDate), nil
}
