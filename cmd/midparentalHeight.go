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

// midparentalHeightCmd represents the midparental-height command
var midparentalHeightCmd = &cobra.Command{
	Use:   "midparental-height MATERNAL_HEIGHT PATERNAL_HEIGHT SEX",
	Short: "Estimates a child's expected adult height",
	Long: `Estimates a child's expected adult height in cm from the parental
heights using the standard mid-parental height formula. Heights are
given in cm and sex is one of male, female.

Example:

  growthctl midparental-height 170 180 male`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		maternalHeight, err := parseFloatArg("maternal height", args[0])
		if err != nil {
			return err
		}
		paternalHeight, err := parseFloatArg("paternal height", args[1])
		if err != nil {
			return err
		}
		sex, err := growth.ParseSex(args[2])
		if err != nil {
			return err
		}

		result, err := growth.MidParentalHeight(maternalHeight, paternalHeight, sex)
		if err != nil {
			return err
		}
		fmt.Printf("Midparental height: %.2f cm\n", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(midparentalHeightCmd)
}
