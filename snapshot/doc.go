// SPDX-License-Identifier: MIT

// Package snapshot persists a trained classifier together with the
// vocabulary it was trained under, so a later run can vectorize new text
// against the exact same token indices and score it with the exact same
// model.
//
// Snapshots are msgpack-encoded and written atomically (temp file + rename)
// so a crash mid-write can never leave a truncated snapshot behind.
package snapshot
