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

// Package fhir renders growth assessments as FHIR R4 Observation resources.
package fhir

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/rcpch/growthctl/growth"
	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

const loincSystem = "http://loinc.org"

// Assessment is one completed measurement conversion.
type Assessment struct {
	Reference growth.Reference
	Method    growth.MeasurementMethod
	Sex       growth.Sex
	Age       float64
	Value     float64
	SDS       float64
	Centile   float64
}

func CreateObservationResource(a Assessment) fm.Observation {
	id := uuid.NewString()
	return fm.Observation{
		Id:     &id,
		Status: fm.ObservationStatusFinal,
		Code:   methodCode(a.Method),
		Method: &fm.CodeableConcept{
			Text: stringPtr(a.Reference.Display() + " growth reference"),
		},
		ValueQuantity: quantity(a.Value, a.Method.Unit()),
		Component: []fm.ObservationComponent{
			{
				Code:          textCode("Standard deviation score"),
				ValueQuantity: quantity(a.SDS, "SDS"),
			},
			{
				Code:          textCode("Centile"),
				ValueQuantity: quantity(a.Centile, "%"),
			},
			{
				Code:          textCode("Decimal age"),
				ValueQuantity: quantity(a.Age, "years"),
			},
		},
	}
}

// methodCode maps a measurement method to its LOINC coding.
func methodCode(method growth.MeasurementMethod) fm.CodeableConcept {
	switch method {
	case growth.MethodWeight:
		return loincCode("29463-7", "Body weight")
	case growth.MethodBMI:
		return loincCode("39156-5", "Body mass index")
	case growth.MethodOFC:
		return loincCode("9843-4", "Head Occipital-frontal circumference")
	default:
		return loincCode("8302-2", "Body height")
	}
}

func loincCode(code string, display string) fm.CodeableConcept {
	system := loincSystem
	return fm.CodeableConcept{
		Coding: []fm.Coding{{System: &system, Code: &code, Display: &display}},
	}
}

func textCode(text string) fm.CodeableConcept {
	return fm.CodeableConcept{Text: &text}
}

func quantity(value float64, unit string) *fm.Quantity {
	number := json.Number(strconv.FormatFloat(value, 'f', -1, 64))
	return &fm.Quantity{Value: &number, Unit: &unit}
}

func stringPtr(s string) *string {
	return &s
}
