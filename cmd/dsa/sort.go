// Copyright 2025 go-dsa Authors
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/sort"
)

// sortAlgos maps the --algo flag to the library's sorting functions.
var sortAlgos = map[string]func([]float64, dsa.Comparator[float64]) []float64{
	"heap":      sort.SortFunc[float64],
	"bubble":    sort.BubbleSortFunc[float64],
	"insertion": sort.InsertionSortFunc[float64],
	"selection": sort.SelectionSortFunc[float64],
	"quick":     sort.QuickSortFunc[float64],
	"merge":     sort.MergeSortFunc[float64],
	"tim":       sort.TimSortFunc[float64],
	"tree":      sort.TreeSortFunc[float64],
}

func algoNames() []string {
	names := make([]string, 0, len(sortAlgos))
	for name := range sortAlgos {
		names = append(names, name)
	}
	sort.Sort(names)
	return names
}

var (
	sortAlgo string
	sortDesc bool
)

var sortCmd = &cobra.Command{
	Use:   "sort [numbers...]",
	Short: "Sort numbers from arguments or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseNumbers(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		algo, ok := sortAlgos[sortAlgo]
		if !ok {
			return errors.Errorf("unknown algorithm %q (have %s)",
				sortAlgo, strings.Join(algoNames(), ", "))
		}
		cmp := dsa.Compare[float64]
		if sortDesc {
			cmp = dsa.Descending[float64]()
		}

		log.Debugw("sorting", "count", len(values), "algo", sortAlgo, "descending", sortDesc)
		algo(values, cmp)

		out := make([]string, len(values))
		for i, v := range values {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
		return nil
	},
}

func init() {
	sortCmd.Flags().StringVarP(&sortAlgo, "algo", "a", "heap",
		"sorting algorithm ("+strings.Join(algoNames(), ", ")+")")
	sortCmd.Flags().BoolVarP(&sortDesc, "desc", "d", false, "sort in descending order")
}

// parseNumbers reads floats from args, or from r when no args are
// given.
func parseNumbers(args []string, r io.Reader) ([]float64, error) {
	if len(args) == 0 {
		scanner := bufio.NewScanner(r)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			args = append(args, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
	}
	if len(args) == 0 {
		return nil, errors.New("no input values")
	}

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}
