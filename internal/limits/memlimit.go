// Copyright (c) 2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limits provides the runtime limits united applies at startup.
package limits

import "runtime/debug"

// SetMemoryLimit configures the runtime to use the provided limit as a soft
// memory limit.  The garbage collector works harder as the live heap
// approaches the limit instead of letting the process balloon past it.
func SetMemoryLimit(limit int64) {
	debug.SetMemoryLimit(limit)
}
