// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 1

	// MaxMessagePayload is the maximum bytes a message can be regardless of
	// other individual limits imposed by messages themselves.
	MaxMessagePayload = 1024 * 1024 * 8 // 8MB
)

// CurrencyNet represents which unit-e network a message belongs to.
type CurrencyNet uint32

// Constants used to indicate the message unit-e network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it is advisable to
// simply disconnect clients that are misbehaving over TCP.
//
// Encoded little endian, the constants reproduce the per-network magic byte
// sequences that lead every message: ee ee ae c1 on the production network,
// fd fc fb fa on the test network, and fa bf b5 da on the regression test
// network.
const (
	// MainNet represents the production unit-e network.
	MainNet CurrencyNet = 0xc1aeeeee

	// TestNet represents the public test network.
	TestNet CurrencyNet = 0xfafbfcfd

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0xdab5bffa
)

// bnStrings is a map of unit-e networks back to their constant names for
// pretty printing.
var bnStrings = map[CurrencyNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegNet:  "RegNet",
}

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}
