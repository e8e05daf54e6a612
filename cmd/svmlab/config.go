// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Experiment is the TOML experiment config. Defaults reproduce the original
// study: 560 training rows, 5 folds, seed 1234, a 70-row prediction file.
type Experiment struct {
	Corpus    string `toml:"corpus"`
	Labels    string `toml:"labels"`
	TrainRows int    `toml:"train_rows"`
	Folds     int    `toml:"folds"`
	Seed      int64  `toml:"seed"`
	Workers   int    `toml:"workers"`
	WantRows  int    `toml:"want_rows"`
}

func defaultExperiment() Experiment {
	return Experiment{
		TrainRows: 560,
		Folds:     5,
		Seed:      1234,
		Workers:   1,
		WantRows:  70,
	}
}

// loadExperiment reads the config file over the defaults and validates the
// fields every subcommand relies on.
func loadExperiment(path string) (Experiment, error) {
	cfg := defaultExperiment()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Experiment{}, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Corpus == "" || cfg.Labels == "" {
		return Experiment{}, fmt.Errorf("config %s: corpus and labels paths are required", path)
	}
	if cfg.TrainRows <= 0 || cfg.Folds < 2 {
		return Experiment{}, fmt.Errorf("config %s: train_rows must be > 0 and folds >= 2", path)
	}

	return cfg, nil
}
