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
	"fmt"
	"os"
	"strconv"

	"github.com/rcpch/growthctl/growth"
	"github.com/rcpch/growthctl/lms"
	"github.com/spf13/cobra"
)

var reference string
var outputFormat string
var noProgress bool

var service *growth.Service

// createService wires the conversion service to the bundled LMS engine.
// Commands that only do date arithmetic never call this, so they carry no
// dependency on the reference tables.
func createService() error {
	engine, err := lms.NewEngine()
	if err != nil {
		return fmt.Errorf("could not load the bundled reference tables: %v", err)
	}
	service = growth.NewService(engine)
	return nil
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s `%s` as a number", name, s)
	}
	return v, nil
}

func parseIntArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s `%s` as an integer", name, s)
	}
	return v, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "growthctl",
	Short: "Growth assessment calculations from the command line",
	Long: `growthctl performs calculations relating to the growth of infants,
children and young people using the UK-WHO, Trisomy 21 and Turner
syndrome references.

You can convert a measurement into an SDS and centile, recover the
measurement behind a target SDS or centile, calculate decimal and
calendar ages with gestational correction and estimate mid-parental
height.`,
	Version: "1.2.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
