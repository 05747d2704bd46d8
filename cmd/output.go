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
	"encoding/json"
	"fmt"
	"os"

	"github.com/rcpch/growthctl/fhir"
	"github.com/rcpch/growthctl/growth"
)

// conversionInput is the (age, method, sex) triple every conversion command
// takes as its first three positional arguments.
type conversionInput struct {
	reference growth.Reference
	age       float64
	method    growth.MeasurementMethod
	sex       growth.Sex
}

func parseConversionArgs(args []string) (conversionInput, error) {
	ref, err := growth.ParseReference(reference)
	if err != nil {
		return conversionInput{}, err
	}
	age, err := parseFloatArg("decimal age", args[0])
	if err != nil {
		return conversionInput{}, err
	}
	method, err := growth.ParseMeasurementMethod(args[1])
	if err != nil {
		return conversionInput{}, err
	}
	sex, err := growth.ParseSex(args[2])
	if err != nil {
		return conversionInput{}, err
	}
	return conversionInput{reference: ref, age: age, method: method, sex: sex}, nil
}

// emitAssessment prints a completed conversion, either as the default text
// lines or as a FHIR Observation resource when --format fhir is set.
func emitAssessment(in conversionInput, value, sds, centile float64) error {
	switch outputFormat {
	case "fhir":
		observation := fhir.CreateObservationResource(fhir.Assessment{
			Reference: in.reference,
			Method:    in.method,
			Sex:       in.sex,
			Age:       in.age,
			Value:     value,
			SDS:       sds,
			Centile:   centile,
		})
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(observation)
	case "text":
		fmt.Printf("Reference: %s\n", in.reference.Display())
		fmt.Printf("SDS: %.4f\n", sds)
		fmt.Printf("Centile: %.1f %%\n", centile)
		fmt.Printf("%s: %.2f %s\n", in.method, value, in.method.Unit())
		return nil
	default:
		return fmt.Errorf("unknown output format `%s`, must be one of `text`, `fhir`", outputFormat)
	}
}
