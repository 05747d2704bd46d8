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

import "gonum.org/v1/gonum/stat/distuv"

// Engine is the reference-specific statistical model. Implementations must
// be safe for concurrent use; lookups outside the published reference data
// return a NoReferenceDataError.
type Engine interface {
	// LookupSDS returns the standard deviation score of observationValue at
	// the given age under the reference.
	LookupSDS(reference Reference, method MeasurementMethod, sex Sex, age, observationValue float64) (float64, error)
	// InvertToMeasurement returns the measurement value that would yield
	// targetSDS at the given age under the reference.
	InvertToMeasurement(reference Reference, method MeasurementMethod, sex Sex, age, targetSDS float64) (float64, error)
}

// Service orchestrates measurement conversions over an Engine. The
// SDS↔centile bijection is owned here and is reference independent.
type Service struct {
	engine Engine
}

func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// CentileForSDS converts an SDS to its centile, 100 * Φ(sds).
func CentileForSDS(sds float64) float64 {
	return 100 * distuv.UnitNormal.CDF(sds)
}

// SDSForCentile converts a centile to its SDS, Φ⁻¹(centile/100). Centiles
// outside the open interval (0, 100) have no finite SDS and are rejected.
func SDSForCentile(centile float64) (float64, error) {
	if centile <= 0 || centile >= 100 {
		return 0, &CentileRangeError{Centile: centile}
	}
	return distuv.UnitNormal.Quantile(centile / 100), nil
}

// SDSForMeasurement returns the SDS of an observed measurement value.
func (s *Service) SDSForMeasurement(reference Reference, age float64, sex Sex, method MeasurementMethod, observationValue float64) (float64, error) {
	return s.engine.LookupSDS(reference, method, sex, age, observationValue)
}

// MeasurementFromSDS returns the measurement value at the requested SDS.
func (s *Service) MeasurementFromSDS(reference Reference, age float64, sex Sex, method MeasurementMethod, requestedSDS float64) (float64, error) {
	return s.engine.InvertToMeasurement(reference, method, sex, age, requestedSDS)
}

// MeasurementFromCentile returns the measurement value at the requested
// centile. It shares the SDS path so that the centile based and the SDS
// based entry points agree exactly.
func (s *Service) MeasurementFromCentile(reference Reference, age float64, sex Sex, method MeasurementMethod, centile float64) (float64, error) {
	sds, err := SDSForCentile(centile)
	if err != nil {
		return 0, err
	}
	return s.MeasurementFromSDS(reference, age, sex, method, sds)
}
