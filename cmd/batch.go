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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rcpch/growthctl/growth"
	"github.com/rcpch/growthctl/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var concurrency int
var outputFile string

// batchColumns is the expected input column order. A first row repeating
// the column names is treated as a header and skipped.
var batchColumns = []string{
	"birth_date", "observation_date", "gestation_weeks", "gestation_days",
	"sex", "measurement_method", "observation_value",
}

type batchRow struct {
	index           int
	record          []string
	birthDate       time.Time
	observationDate time.Time
	gestation       growth.Gestation
	sex             growth.Sex
	method          growth.MeasurementMethod
	value           float64
}

type batchResult struct {
	index      int
	record     []string
	decimalAge float64
	sds        float64
	centile    float64
	duration   time.Duration
	err        error
}

func parseBatchRow(index int, record []string) (batchRow, error) {
	if len(record) != len(batchColumns) {
		return batchRow{}, fmt.Errorf("expected %d columns, got %d", len(batchColumns), len(record))
	}
	row := batchRow{index: index, record: record}

	var err error
	if row.birthDate, err = growth.ParseDate(record[0]); err != nil {
		return batchRow{}, err
	}
	if row.observationDate, err = growth.ParseDate(record[1]); err != nil {
		return batchRow{}, err
	}
	weeks, err := parseIntArg("gestation weeks", record[2])
	if err != nil {
		return batchRow{}, err
	}
	days, err := parseIntArg("gestation days", record[3])
	if err != nil {
		return batchRow{}, err
	}
	if row.gestation, err = growth.NewGestation(weeks, days); err != nil {
		return batchRow{}, err
	}
	if row.sex, err = growth.ParseSex(record[4]); err != nil {
		return batchRow{}, err
	}
	if row.method, err = growth.ParseMeasurementMethod(record[5]); err != nil {
		return batchRow{}, err
	}
	if row.value, err = parseFloatArg("observation value", record[6]); err != nil {
		return batchRow{}, err
	}
	return row, nil
}

// assessRow calculates the decimal age and the SDS/centile of one row.
func assessRow(ref growth.Reference, row batchRow) batchResult {
	start := time.Now()
	result := batchResult{index: row.index, record: row.record}

	var err error
	if adjustment {
		result.decimalAge, err = growth.CorrectedDecimalAge(row.birthDate, row.observationDate, row.gestation)
	} else {
		result.decimalAge = growth.ChronologicalDecimalAge(row.birthDate, row.observationDate)
	}
	if err == nil {
		result.sds, err = service.SDSForMeasurement(ref, result.decimalAge, row.sex, row.method, row.value)
	}
	if err == nil {
		result.centile = growth.CentileForSDS(result.sds)
	}

	result.err = err
	result.duration = time.Since(start)
	return result
}

func readBatchRows(filename string) ([]batchRow, []batchResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	var rows []batchRow
	var failed []batchResult
	index := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if index == 0 && len(record) > 0 && record[0] == batchColumns[0] {
			continue
		}
		row, err := parseBatchRow(index, record)
		if err != nil {
			failed = append(failed, batchResult{index: index, record: record, err: err})
		} else {
			rows = append(rows, row)
		}
		index++
	}
	return rows, failed, nil
}

func writeBatchResults(w io.Writer, results []batchResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := append(append([]string{}, batchColumns...), "decimal_age", "sds", "centile", "error")
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, result := range results {
		record := append([]string{}, result.record...)
		for len(record) < len(batchColumns) {
			record = append(record, "")
		}
		if result.err != nil {
			record = append(record, "", "", "", result.err.Error())
		} else {
			record = append(record,
				strconv.FormatFloat(result.decimalAge, 'f', 4, 64),
				strconv.FormatFloat(result.sds, 'f', 4, 64),
				strconv.FormatFloat(result.centile, 'f', 1, 64),
				"")
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch CSV_FILE",
	Short: "Assesses many measurements from a CSV file",
	Long: `Reads measurement records from a CSV file, calculates decimal age,
SDS and centile for every row and writes a result CSV.

The input columns are birth_date, observation_date, gestation_weeks,
gestation_days, sex, measurement_method, observation_value. Rows are
assessed in parallel according to the --concurrency flag; every
calculation is independent, so ordering does not matter. Rows that fail
to parse or fall outside the reference data are reported individually
without aborting the run.

Example:

  growthctl batch -r uk-who -o results.csv measurements.csv`,
	ValidArgs: []string{"file"},
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires a CSV file argument")
		}
		if info, err := os.Stat(args[0]); os.IsNotExist(err) {
			return fmt.Errorf("file `%s` doesn't exist", args[0])
		} else if info.IsDir() {
			return fmt.Errorf("`%s` is a directory", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := createService(); err != nil {
			return err
		}
		ref, err := growth.ParseReference(reference)
		if err != nil {
			return err
		}

		rows, failed, err := readBatchRows(args[0])
		if err != nil {
			return err
		}
		total := len(rows) + len(failed)

		progress := mpb.New()
		var bar *mpb.Bar
		if !noProgress {
			bar = progress.AddBar(int64(len(rows)),
				mpb.BarRemoveOnComplete(),
				mpb.PrependDecorators(decor.Name("assess ")),
				mpb.AppendDecorators(decor.Percentage()),
			)
		}

		// Aggregate results in one single goroutine
		results := make([]batchResult, 0, total)
		durations := make([]float64, 0, len(rows))
		resultCh := make(chan batchResult)
		finished := make(chan bool)
		go func() {
			for result := range resultCh {
				results = append(results, result)
				if result.err == nil {
					durations = append(durations, result.duration.Seconds())
				}
			}
			finished <- true
		}()

		sem := make(chan bool, concurrency)
		start := time.Now()
		for _, row := range rows {
			sem <- true
			go func(row batchRow) {
				defer func() { <-sem }()
				resultCh <- assessRow(ref, row)
				if bar != nil {
					bar.Increment()
				}
			}(row)
		}

		// Wait for all assessments to finish
		for i := 0; i < cap(sem); i++ {
			sem <- true
		}
		close(resultCh)
		progress.Wait()
		<-finished
		totalDuration := time.Since(start)

		results = append(results, failed...)
		sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

		out := io.Writer(os.Stdout)
		if outputFile != "" {
			file, err := util.CreateOutputFile(outputFile)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}
		if err := writeBatchResults(out, results); err != nil {
			return err
		}

		errCount := 0
		for _, result := range results {
			if result.err != nil {
				errCount++
			}
		}
		fmt.Fprintf(os.Stderr, "\nRows            [total, concurrency]     %d, %d\n", total, concurrency)
		if total > 0 {
			fmt.Fprintf(os.Stderr, "Success         [ratio]                  %.2f %%\n",
				float32(total-errCount)/float32(total)*100)
		}
		fmt.Fprintf(os.Stderr, "Duration        [total]                  %s\n",
			util.FmtDurationHumanReadable(totalDuration))
		if len(durations) > 0 {
			stats := util.CalculateDurationStatistics(durations)
			fmt.Fprintf(os.Stderr, "Latencies       [mean, 50, 95, 99, max]  %s, %s, %s, %s, %s\n",
				stats.Mean, stats.Q50, stats.Q95, stats.Q99, stats.Max)
		}
		if errCount > 0 {
			fmt.Fprintln(os.Stderr, "\nErrors:")
			for _, result := range results {
				if result.err != nil {
					fmt.Fprintf(os.Stderr, "  row %d: %s\n", result.index+1,
						util.IndentExceptFirstLine(4, result.err.Error()))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&reference, "reference", "r", "uk-who", "growth reference (uk-who, trisomy-21, turners-syndrome)")
	batchCmd.Flags().BoolVarP(&adjustment, "adjustment", "a", false, "adjust decimal ages for gestation")
	batchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "number of parallel assessments")
	batchCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "write the result CSV to this file instead of stdout")
	batchCmd.Flags().BoolVar(&noProgress, "no-progress", false, "don't show progress bar")
}
