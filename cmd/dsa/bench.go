// Copyright 2025 go-dsa Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/sort"
)

// benchConfig drives the bench subcommand. Keys missing from the TOML
// file keep their defaults.
type benchConfig struct {
	Seed  int64    `toml:"seed"`
	Reps  int      `toml:"reps"`
	Sizes []int    `toml:"sizes"`
	Algos []string `toml:"algos"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Seed:  42,
		Reps:  3,
		Sizes: []int{1000, 10000},
		Algos: []string{"heap", "quick", "merge", "tim"},
	}
}

func loadBenchConfig(path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return benchConfig{}, errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return benchConfig{}, errors.Errorf("unknown config keys %v in %s", undecoded, path)
	}
	if err := cfg.validate(); err != nil {
		return benchConfig{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c benchConfig) validate() error {
	if c.Reps < 1 {
		return errors.Errorf("reps must be at least 1, got %d", c.Reps)
	}
	if len(c.Sizes) == 0 {
		return errors.New("sizes must not be empty")
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return errors.Errorf("sizes must be positive, got %d", size)
		}
	}
	if len(c.Algos) == 0 {
		return errors.New("algos must not be empty")
	}
	for _, name := range c.Algos {
		if _, ok := sortAlgos[name]; !ok {
			return errors.Errorf("unknown algorithm %q", name)
		}
	}
	return nil
}

type benchResult struct {
	algo string
	size int
	best time.Duration
	avg  time.Duration
}

var benchConfigPath string

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the sorting algorithms on random data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := defaultBenchConfig()
		if _, err := os.Stat(benchConfigPath); err == nil {
			cfg, err = loadBenchConfig(benchConfigPath)
			if err != nil {
				return err
			}
			log.Debugw("loaded config", "path", benchConfigPath)
		} else if cmd.Flags().Changed("config") {
			return errors.Wrapf(err, "open config %s", benchConfigPath)
		} else {
			log.Debugw("no config file, using defaults", "path", benchConfigPath)
		}

		results, err := runBench(cfg)
		if err != nil {
			return err
		}
		return writeBenchTable(cmd.OutOrStdout(), results)
	},
}

func init() {
	benchCmd.Flags().StringVarP(&benchConfigPath, "config", "c", "bench.toml",
		"TOML file with seed, reps, sizes, and algos")
}

// runBench times every configured algorithm on every size. Each (algo,
// size) pair sorts copies of the same random input, so the timings
// compare like against like.
func runBench(cfg benchConfig) ([]benchResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var results []benchResult
	for _, size := range cfg.Sizes {
		base := make([]float64, size)
		for i := range base {
			base[i] = rng.Float64()
		}
		for _, name := range cfg.Algos {
			algo, ok := sortAlgos[name]
			if !ok {
				return nil, errors.Errorf("unknown algorithm %q", name)
			}
			var total, best time.Duration
			for rep := range cfg.Reps {
				data := slices.Clone(base)
				start := time.Now()
				algo(data, dsa.Compare[float64])
				elapsed := time.Since(start)
				if !sort.IsSorted(data) {
					return nil, errors.Errorf("%s produced unsorted output", name)
				}
				total += elapsed
				if rep == 0 || elapsed < best {
					best = elapsed
				}
			}
			results = append(results, benchResult{
				algo: name,
				size: size,
				best: best,
				avg:  total / time.Duration(cfg.Reps),
			})
			log.Debugw("benchmarked", "algo", name, "size", size, "best", best)
		}
	}
	return results, nil
}

func writeBenchTable(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGO\tSIZE\tBEST\tAVG")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.algo, r.size, r.best, r.avg)
	}
	return tw.Flush()
}
