// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/svmlab/dataset"
	"github.com/katalvlaran/svmlab/metrics"
	"github.com/katalvlaran/svmlab/snapshot"
	"github.com/katalvlaran/svmlab/svm"
)

var (
	predictKernel   string
	predictC        float64
	predictGamma    float64
	predictSnapshot string
	predictOut      string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Write predicted labels for the held-out split (row count is gated)",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictKernel, "kernel", "linear", "kernel (linear|rbf)")
	predictCmd.Flags().Float64Var(&predictC, "c", 1, "regularization strength C")
	predictCmd.Flags().Float64Var(&predictGamma, "gamma", 0.1, "RBF gamma (ignored for linear)")
	predictCmd.Flags().StringVar(&predictSnapshot, "snapshot", "", "score with a saved snapshot instead of retraining")
	predictCmd.Flags().StringVar(&predictOut, "out", "", "output label file (required)")
	predictCmd.MarkFlagRequired("out")
}

func runPredict(_ *cobra.Command, _ []string) error {
	cfg, err := loadExperiment(configPath)
	if err != nil {
		return err
	}
	data, err := loadSplit(cfg)
	if err != nil {
		return err
	}

	var clf svm.Classifier
	if predictSnapshot != "" {
		s, err := snapshot.Load(predictSnapshot)
		if err != nil {
			return err
		}
		clf = s.Classifier()
	} else {
		kernel, err := parseKernel(predictKernel)
		if err != nil {
			return err
		}
		clfCfg := baseConfig(cfg)
		clfCfg.Kernel = kernel
		clfCfg.C = predictC
		clfCfg.Gamma = predictGamma
		trained := svm.New(clfCfg)
		if err = trained.Fit(data.xTrain, data.yTrain); err != nil {
			return err
		}
		clf = trained
	}

	scores, err := clf.DecisionValues(data.xTest)
	if err != nil {
		return err
	}
	labels := metrics.Binarize(scores)
	if err = dataset.WriteLabels(predictOut, labels, cfg.WantRows); err != nil {
		return err
	}
	color.New(color.FgGreen).Printf("%d labels written to %s\n", len(labels), predictOut)

	return nil
}
