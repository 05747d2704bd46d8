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

// Sex of the child the reference data is consulted for.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex parses the case-sensitive literals "male" and "female".
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	}
	return "", &ValidationError{Param: "sex", Detail: "must be one of `male`, `female`, was `" + s + "`"}
}

// MeasurementMethod identifies which kind of measurement an observation
// value represents. It determines the unit of the raw measurement.
type MeasurementMethod string

const (
	MethodHeight MeasurementMethod = "height"
	MethodWeight MeasurementMethod = "weight"
	MethodBMI    MeasurementMethod = "bmi"
	MethodOFC    MeasurementMethod = "ofc"
)

// ParseMeasurementMethod parses the case-sensitive literals "height",
// "weight", "bmi" and "ofc" (head circumference).
func ParseMeasurementMethod(s string) (MeasurementMethod, error) {
	switch MeasurementMethod(s) {
	case MethodHeight, MethodWeight, MethodBMI, MethodOFC:
		return MeasurementMethod(s), nil
	}
	return "", &ValidationError{Param: "measurement method",
		Detail: "must be one of `height`, `weight`, `bmi`, `ofc`, was `" + s + "`"}
}

// Unit returns the unit of the raw measurement. It depends on the
// measurement method only, never on the reference.
func (m MeasurementMethod) Unit() string {
	switch m {
	case MethodWeight:
		return "kg"
	case MethodBMI:
		return "kg/m2"
	default:
		return "cm"
	}
}

// Reference selects the population reference the statistical model is
// consulted for. Not every (reference, method, sex, age) combination has
// published data.
type Reference string

const (
	ReferenceUKWHO     Reference = "uk-who"
	ReferenceTrisomy21 Reference = "trisomy-21"
	ReferenceTurners   Reference = "turners-syndrome"
)

// ParseReference parses the case-sensitive literals "uk-who", "trisomy-21"
// and "turners-syndrome".
func ParseReference(s string) (Reference, error) {
	switch Reference(s) {
	case ReferenceUKWHO, ReferenceTrisomy21, ReferenceTurners:
		return Reference(s), nil
	}
	return "", &ValidationError{Param: "reference",
		Detail: "must be one of `uk-who`, `trisomy-21`, `turners-syndrome`, was `" + s + "`"}
}

// Display returns the human readable name of the reference.
func (r Reference) Display() string {
	switch r {
	case ReferenceTrisomy21:
		return "Trisomy 21/Down's Syndrome"
	case ReferenceTurners:
		return "Turner's Syndrome"
	default:
		return "UK-WHO"
	}
}
