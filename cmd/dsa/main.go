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

// Command dsa exercises the library from the shell.
//
// Usage:
//
//	dsa sort 5 1 3 2 4                 # sort arguments
//	echo "5 1 3 2 4" | dsa sort        # sort stdin
//	dsa sort --algo quick --desc 3 1 2
//	dsa bench --config bench.toml      # time the sorting algorithms
//
// The bench config is TOML with seed, reps, sizes, and algos keys; any
// key left out keeps its default.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	// log is replaced with a real logger before any command runs.
	log = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:           "dsa",
	Short:         "Sort data and benchmark the library's algorithms",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(verbose)
		if err != nil {
			return errors.Wrap(err, "build logger")
		}
		log = logger
		return nil
	},
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
