// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/svmlab/cv"
	"github.com/katalvlaran/svmlab/metrics"
	"github.com/katalvlaran/svmlab/snapshot"
	"github.com/katalvlaran/svmlab/svm"
)

var (
	evalKernel string
	evalC      float64
	evalGamma  float64
	evalSave   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Train with fixed hyperparameters and report all metrics on the held-out split",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalKernel, "kernel", "linear", "kernel (linear|rbf)")
	evaluateCmd.Flags().Float64Var(&evalC, "c", 1, "regularization strength C")
	evaluateCmd.Flags().Float64Var(&evalGamma, "gamma", 0.1, "RBF gamma (ignored for linear)")
	evaluateCmd.Flags().StringVar(&evalSave, "save", "", "optional snapshot path for the trained model")
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	cfg, err := loadExperiment(configPath)
	if err != nil {
		return err
	}
	kernel, err := parseKernel(evalKernel)
	if err != nil {
		return err
	}

	data, err := loadSplit(cfg)
	if err != nil {
		return err
	}

	clfCfg := baseConfig(cfg)
	clfCfg.Kernel = kernel
	clfCfg.C = evalC
	clfCfg.Gamma = evalGamma
	clf := svm.New(clfCfg)
	if err = clf.Fit(data.xTrain, data.yTrain); err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s kernel, C=%g", evalKernel, evalC)
	if kernel == svm.RBF {
		header.Printf(", gamma=%g", evalGamma)
	}
	header.Printf(" — held-out performance (%d rows)\n", len(data.yTest))

	for _, m := range metrics.All() {
		score, err := cv.Evaluate(clf, data.xTest, data.yTest, m)
		if err != nil {
			return err
		}
		color.New(color.FgWhite).Printf("  %-12s %.4f\n", m, score)
	}

	if evalSave != "" {
		s, err := snapshot.New(data.vocab, clf)
		if err != nil {
			return err
		}
		if err = snapshot.Save(evalSave, s); err != nil {
			return err
		}
		color.New(color.FgGreen).Printf("snapshot written to %s\n", evalSave)
	}

	return nil
}
