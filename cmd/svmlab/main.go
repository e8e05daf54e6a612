// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "svmlab",
	Short: "Bag-of-words SVM experiment driver",
	Long: `svmlab runs the offline text-classification experiment end to end:
bag-of-words feature extraction, cross-validated hyperparameter sweeps,
held-out evaluation under six metrics, and gated label-file prediction.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(predictCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "svmlab.toml", "experiment config file")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
