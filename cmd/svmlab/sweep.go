// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/svmlab/cv"
	"github.com/katalvlaran/svmlab/metrics"
	"github.com/katalvlaran/svmlab/svm"
	"github.com/katalvlaran/svmlab/tune"
)

var (
	sweepKernel string
	sweepMetric string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Cross-validated hyperparameter sweep over the C or (C, gamma) grid",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepKernel, "kernel", "linear", "kernel to sweep (linear|rbf)")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "", "metric to optimize (default: all six)")
}

func runSweep(_ *cobra.Command, _ []string) error {
	cfg, err := loadExperiment(configPath)
	if err != nil {
		return err
	}
	kernel, err := parseKernel(sweepKernel)
	if err != nil {
		return err
	}
	ms, err := selectedMetrics()
	if err != nil {
		return err
	}

	data, err := loadSplit(cfg)
	if err != nil {
		return err
	}
	folds, err := cv.StratifiedKFold(data.yTrain, cfg.Folds, nil)
	if err != nil {
		return err
	}

	base := baseConfig(cfg)
	opts := &tune.SweepOptions{Workers: cfg.Workers, Base: &base}
	header := color.New(color.FgCyan, color.Bold)
	win := color.New(color.FgGreen)

	for _, m := range ms {
		header.Printf("%s sweep on %s (%d-fold CV)\n", sweepKernel, m, cfg.Folds)
		if kernel == svm.Linear {
			c, curve, err := tune.SelectLinear(data.xTrain, data.yTrain, folds, m, opts)
			if err != nil {
				return err
			}
			for _, r := range curve {
				fmt.Printf("  C=%-8g %s=%.4f\n", r.Candidate.C, m, r.Score)
			}
			win.Printf("  -> best C=%g\n", c)
			continue
		}
		best, err := tune.SelectRBF(data.xTrain, data.yTrain, folds, m, opts)
		if err != nil {
			return err
		}
		win.Printf("  -> best C=%g gamma=%g %s=%.4f\n",
			best.Candidate.C, best.Candidate.Gamma, m, best.Score)
	}

	return nil
}

// selectedMetrics resolves the --metric flag: one named metric, or all six.
func selectedMetrics() ([]metrics.Metric, error) {
	if sweepMetric == "" {
		return metrics.All(), nil
	}
	m, err := metrics.ParseMetric(sweepMetric)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, sweepMetric)
	}

	return []metrics.Metric{m}, nil
}
