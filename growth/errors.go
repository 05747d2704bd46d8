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

import "fmt"

// ValidationError signals malformed or implausible user input. It is
// terminal to the invocation and never retried.
type ValidationError struct {
	Param  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Detail)
}

// CentileRangeError signals a centile outside the open interval (0, 100),
// which has no finite SDS under the normal-distribution inverse.
type CentileRangeError struct {
	Centile float64
}

func (e *CentileRangeError) Error() string {
	return fmt.Sprintf("centile %v is outside the open interval (0, 100) and has no finite SDS", e.Centile)
}

// NoReferenceDataError signals that the requested combination falls outside
// the domain of the published reference data.
type NoReferenceDataError struct {
	Reference Reference
	Method    MeasurementMethod
	Sex       Sex
	Age       float64
}

func (e *NoReferenceDataError) Error() string {
	return fmt.Sprintf("no %s reference data for %s %s at age %v y",
		e.Reference.Display(), e.Sex, e.Method, e.Age)
}
