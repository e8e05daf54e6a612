// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/svmlab/bow"
	"github.com/katalvlaran/svmlab/svm"
)

// Snapshot couples a trained model with its vocabulary. Tokens are stored
// in index order, so bow.FromTokens reproduces the original mapping.
type Snapshot struct {
	Tokens []string  `msgpack:"tokens"`
	Model  svm.Model `msgpack:"model"`
}

// New assembles a snapshot from a vocabulary and a trained classifier.
func New(vocab *bow.Vocabulary, clf *svm.SVC) (*Snapshot, error) {
	m, err := clf.Model()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return &Snapshot{Tokens: vocab.Tokens(), Model: m}, nil
}

// Vocabulary rebuilds the stored vocabulary.
func (s *Snapshot) Vocabulary() *bow.Vocabulary {
	return bow.FromTokens(s.Tokens)
}

// Classifier rebuilds the stored trained classifier.
func (s *Snapshot) Classifier() *svm.SVC {
	return svm.NewFromModel(s.Model)
}

// Save writes the snapshot atomically: encode, write a sibling temp file,
// then rename over the target.
func Save(path string, s *Snapshot) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	return nil
}

// Load reads a snapshot written by Save.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	var s Snapshot
	if err = msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return &s, nil
}
