// Copyright (c) 2017-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// sampleUnitedConf is a string containing the commented example config for
// united.
//
//go:embed sample-united.conf
var sampleUnitedConf string

// United returns a string containing the commented example config for united.
func United() string {
	return sampleUnitedConf
}
