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

// MidParentalHeight estimates a child's expected adult height in cm from
// the parental heights using the standard clinical formula: the parental
// mean plus 6.5 cm for boys, minus 6.5 cm for girls.
func MidParentalHeight(heightMaternal, heightPaternal float64, sex Sex) (float64, error) {
	if err := validParentalHeight("maternal height", heightMaternal); err != nil {
		return 0, err
	}
	if err := validParentalHeight("paternal height", heightPaternal); err != nil {
		return 0, err
	}

	if sex == SexMale {
		return (heightMaternal + heightPaternal + 13) / 2, nil
	}
	return (heightMaternal + heightPaternal - 13) / 2, nil
}

func validParentalHeight(param string, height float64) error {
	if height < 100 || height > 250 {
		return &ValidationError{Param: param,
			Detail: fmt.Sprintf("must be a plausible adult height between 100 and 250 cm, was %v", height)}
	}
	return nil
}
