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

// measurementForSdsCmd represents the measurement-for-sds command
var measurementForSdsCmd = &cobra.Command{
	Use:   "measurement-for-sds DECIMAL_AGE MEASUREMENT_METHOD SEX SDS",
	Short: "Returns the measurement behind an SDS",
	Long: `Returns the measurement value that lies on the given standard
deviation score at the given decimal age, together with its unit.

The reference defaults to UK-WHO and can be changed with --reference.

Example:

  growthctl measurement-for-sds 1.0 height male 0
  growthctl measurement-for-sds -r trisomy-21 4.0 weight male -1.5`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := createService(); err != nil {
			return err
		}
		in, err := parseConversionArgs(args)
		if err != nil {
			return err
		}
		sds, err := parseFloatArg("sds", args[3])
		if err != nil {
			return err
		}

		value, err := service.MeasurementFromSDS(in.reference, in.age, in.sex, in.method, sds)
		if err != nil {
			return err
		}
		return emitAssessment(in, value, sds, growth.CentileForSDS(sds))
	},
}

func init() {
	rootCmd.AddCommand(measurementForSdsCmd)

	measurementForSdsCmd.Flags().StringVarP(&reference, "reference", "r", "uk-who", "growth reference (uk-who, trisomy-21, turners-syndrome)")
	measurementForSdsCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, fhir)")
}
