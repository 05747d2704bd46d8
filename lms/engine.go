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

// Package lms implements the growth.Engine interface on bundled LMS
// (Box-Cox power, median, coefficient of variation) reference tables.
package lms

import (
	"embed"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/rcpch/growthctl/growth"
)

//go:embed tables/*.yaml
var tables embed.FS

// Point holds the LMS coefficients at one decimal age.
type Point struct {
	Age float64 `yaml:"age"`
	L   float64 `yaml:"l"`
	M   float64 `yaml:"m"`
	S   float64 `yaml:"s"`
}

// Table is the on-disk shape of one reference document.
type Table struct {
	Reference    string                        `yaml:"reference"`
	Measurements map[string]map[string][]Point `yaml:"measurements"`
}

type seriesKey struct {
	reference growth.Reference
	method    growth.MeasurementMethod
	sex       growth.Sex
}

// Engine answers SDS lookups and inversions against the bundled reference
// tables. It is immutable after construction and safe for concurrent use.
type Engine struct {
	series map[seriesKey][]Point
}

// NewEngine decodes the embedded reference tables.
func NewEngine() (*Engine, error) {
	entries, err := tables.ReadDir("tables")
	if err != nil {
		return nil, err
	}

	engine := &Engine{series: make(map[seriesKey][]Point)}
	for _, entry := range entries {
		data, err := tables.ReadFile("tables/" + entry.Name())
		if err != nil {
			return nil, err
		}
		var table Table
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("could not decode reference table %s: %v", entry.Name(), err)
		}
		if err := engine.add(table); err != nil {
			return nil, fmt.Errorf("invalid reference table %s: %v", entry.Name(), err)
		}
	}
	return engine, nil
}

func (e *Engine) add(table Table) error {
	reference, err := growth.ParseReference(table.Reference)
	if err != nil {
		return err
	}
	for methodName, bySex := range table.Measurements {
		method, err := growth.ParseMeasurementMethod(methodName)
		if err != nil {
			return err
		}
		for sexName, points := range bySex {
			sex, err := growth.ParseSex(sexName)
			if err != nil {
				return err
			}
			if len(points) < 2 {
				return fmt.Errorf("series %s/%s/%s needs at least two points", reference, method, sex)
			}
			sort.Slice(points, func(i, j int) bool { return points[i].Age < points[j].Age })
			e.series[seriesKey{reference, method, sex}] = points
		}
	}
	return nil
}

// LookupSDS implements growth.Engine.
func (e *Engine) LookupSDS(reference growth.Reference, method growth.MeasurementMethod, sex growth.Sex, age, observationValue float64) (float64, error) {
	if observationValue <= 0 {
		return 0, &growth.ValidationError{Param: "observation value",
			Detail: fmt.Sprintf("must be positive, was %v", observationValue)}
	}
	point, err := e.coefficients(reference, method, sex, age)
	if err != nil {
		return 0, err
	}
	return zScore(point, observationValue), nil
}

// InvertToMeasurement implements growth.Engine.
func (e *Engine) InvertToMeasurement(reference growth.Reference, method growth.MeasurementMethod, sex growth.Sex, age, targetSDS float64) (float64, error) {
	point, err := e.coefficients(reference, method, sex, age)
	if err != nil {
		return 0, err
	}
	return measurement(point, targetSDS)
}

// coefficients returns the LMS coefficients at the given age, linearly
// interpolated between the bracketing table ages. Ages outside the series
// range and absent series surface as NoReferenceDataError.
func (e *Engine) coefficients(reference growth.Reference, method growth.MeasurementMethod, sex growth.Sex, age float64) (Point, error) {
	points, ok := e.series[seriesKey{reference, method, sex}]
	if !ok {
		return Point{}, &growth.NoReferenceDataError{Reference: reference, Method: method, Sex: sex, Age: age}
	}
	if age < points[0].Age || age > points[len(points)-1].Age {
		return Point{}, &growth.NoReferenceDataError{Reference: reference, Method: method, Sex: sex, Age: age}
	}

	upper := sort.Search(len(points), func(i int) bool { return points[i].Age >= age })
	if points[upper].Age == age {
		return points[upper], nil
	}

	lo, hi := points[upper-1], points[upper]
	t := (age - lo.Age) / (hi.Age - lo.Age)
	return Point{
		Age: age,
		L:   lo.L + t*(hi.L-lo.L),
		M:   lo.M + t*(hi.M-lo.M),
		S:   lo.S + t*(hi.S-lo.S),
	}, nil
}

// zScore applies the LMS transform, with the log-normal limit at L = 0.
func zScore(p Point, value float64) float64 {
	if p.L == 0 {
		return math.Log(value/p.M) / p.S
	}
	return (math.Pow(value/p.M, p.L) - 1) / (p.L * p.S)
}

// measurement is the algebraic inverse of zScore, so engine round trips are
// exact to float precision.
func measurement(p Point, sds float64) (float64, error) {
	if p.L == 0 {
		return p.M * math.Exp(p.S*sds), nil
	}
	base := 1 + p.L*p.S*sds
	if base <= 0 {
		return 0, &growth.ValidationError{Param: "sds",
			Detail: fmt.Sprintf("%v is beyond the range the reference distribution can represent", sds)}
	}
	return p.M * math.Pow(base, 1/p.L), nil
}
