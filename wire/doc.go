// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the unit-e wire protocol primitives.

This package provides the block header, transaction, and block types used
throughout the node along with their canonical serialization, the network
identity magics that keep messages from one network from being accepted on
another, and the low level encoding helpers (variable length integers and
byte slices) the serialized forms are built from.

Blocks carry their proof of stake in the header (the stake modifier) and a
proposer signature trailing the transaction list, so there is no nonce and
no proof-of-work field beyond the compact difficulty bits.
*/
package wire
