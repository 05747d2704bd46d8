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

package cmd

import (
	"fmt"

	"github.com/rcpch/growthctl/growth"
	"github.com/spf13/cobra"
)

var adjustment bool

// parseGestationArgs reads the optional gestation weeks/days positional
// arguments, falling back to term (40, 0).
func parseGestationArgs(args []string) (growth.Gestation, error) {
	gestation := growth.Term
	if len(args) > 2 {
		weeks, err := parseIntArg("gestation weeks", args[2])
		if err != nil {
			return growth.Gestation{}, err
		}
		gestation.Weeks = weeks
	}
	if len(args) > 3 {
		days, err := parseIntArg("gestation days", args[3])
		if err != nil {
			return growth.Gestation{}, err
		}
		gestation.Days = days
	}
	return gestation, gestation.Validate()
}

// ageCalculationCmd represents the age-calculation command
var ageCalculationCmd = &cobra.Command{
	Use:   "age-calculation BIRTH_DATE OBSERVATION_DATE [GESTATION_WEEKS [GESTATION_DAYS]]",
	Short: "Calculates decimal and calendar age",
	Long: `Calculates the decimal age in years between a birth date and an
observation date together with a calendar breakdown into years, months
and days. Dates are given as YYYY-MM-DD.

With --adjustment the decimal age is corrected for gestation: it is
measured from the estimated date of delivery at 40 weeks instead of the
actual birth date. Gestation defaults to 40 weeks and 0 days.

Example:

  growthctl age-calculation 2020-01-01 2021-01-01
  growthctl age-calculation -a 2020-01-01 2021-01-01 28 3`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		birthDate, err := growth.ParseDate(args[0])
		if err != nil {
			return err
		}
		observationDate, err := growth.ParseDate(args[1])
		if err != nil {
			return err
		}
		gestation, err := parseGestationArgs(args)
		if err != nil {
			return err
		}

		calendarAge := growth.ChronologicalCalendarAge(birthDate, observationDate)
		if adjustment {
			decimalAge, err := growth.CorrectedDecimalAge(birthDate, observationDate, gestation)
			if err != nil {
				return err
			}
			fmt.Printf("Adjusted: %.4f y,\n%s\n", decimalAge, calendarAge)
		} else {
			decimalAge := growth.ChronologicalDecimalAge(birthDate, observationDate)
			fmt.Printf("Unadjusted: %.4f y,\n%s\n", decimalAge, calendarAge)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ageCalculationCmd)

	ageCalculationCmd.Flags().BoolVarP(&adjustment, "adjustment", "a", false, "adjust for gestational age")
}
