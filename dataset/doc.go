// SPDX-License-Identifier: MIT

// Package dataset reads and writes the lab's plain-text data files:
// corpora with one document per line, and whitespace-delimited numeric
// vectors such as label files.
//
// Values are not range-checked here — a label file is expected to hold
// +1/-1 but this layer only parses floats. The one shape rule lives in
// WriteLabels: a predicted-label vector must have exactly the expected row
// count (DefaultWantRows for this dataset) or nothing is written at all.
package dataset
