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

// measurementForCentileCmd represents the measurement-for-centile command
var measurementForCentileCmd = &cobra.Command{
	Use:   "measurement-for-centile DECIMAL_AGE MEASUREMENT_METHOD SEX CENTILE",
	Short: "Returns the measurement behind a centile",
	Long: `Returns the measurement value that lies on the given centile at the
given decimal age, together with its unit.

The centile must lie strictly between 0 and 100. The reference defaults
to UK-WHO and can be changed with --reference.

Example:

  growthctl measurement-for-centile 1.0 height male 50
  growthctl measurement-for-centile -r turners-syndrome 8.0 height female 9`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := createService(); err != nil {
			return err
		}
		in, err := parseConversionArgs(args)
		if err != nil {
			return err
		}
		centile, err := parseFloatArg("centile", args[3])
		if err != nil {
			return err
		}

		sds, err := growth.SDSForCentile(centile)
		if err != nil {
			return err
		}
		value, err := service.MeasurementFromSDS(in.reference, in.age, in.sex, in.method, sds)
		if err != nil {
			return err
		}
		return emitAssessment(in, value, sds, centile)
	},
}

func init() {
	rootCmd.AddCommand(measurementForCentileCmd)

	measurementForCentileCmd.Flags().StringVarP(&reference, "reference", "r", "uk-who", "growth reference (uk-who, trisomy-21, turners-syndrome)")
	measurementForCentileCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, fhir)")
}
