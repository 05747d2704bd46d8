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
	"github.com/rcpch/growthctl/growth"
	"github.com/spf13/cobra"
)

// sdsForMeasurementCmd represents the sds-for-measurement command
var sdsForMeasurementCmd = &cobra.Command{
	Use:   "sds-for-measurement DECIMAL_AGE MEASUREMENT_METHOD SEX OBSERVATION_VALUE",
	Short: "Returns the SDS and centile for a measurement",
	Long: `Returns the standard deviation score and centile of an observed
measurement value at the given decimal age.

The measurement method is one of height, weight, bmi, ofc (head
circumference) and sex is one of male, female. The reference defaults
to UK-WHO and can be changed with --reference.

Example:

  growthctl sds-for-measurement 1.0 height male 75.7
  growthctl sds-for-measurement -r trisomy-21 2.5 weight female 11.2`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := createService(); err != nil {
			return err
		}
		in, err := parseConversionArgs(args)
		if err != nil {
			return err
		}
		observationValue, err := parseFloatArg("observation value", args[3])
		if err != nil {
			return err
		}

		sds, err := service.SDSForMeasurement(in.reference, in.age, in.sex, in.method, observationValue)
		if err != nil {
			return err
		}
		return emitAssessment(in, observationValue, sds, growth.CentileForSDS(sds))
	},
}

func init() {
	rootCmd.AddCommand(sdsForMeasurementCmd)

	sdsForMeasurementCmd.Flags().StringVarP(&reference, "reference", "r", "uk-who", "growth reference (uk-who, trisomy-21, turners-syndrome)")
	sdsForMeasurementCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, fhir)")
}
