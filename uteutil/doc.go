// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uteutil provides unit-e specific convenience functions and types.

# Amount Overview

An Amount represents a quantity of atoms, the base monetary unit.  One coin
(UTE) is 1e8 atoms.  The type provides conversion to and from floating point
coin values along with formatting for the common denominations.

# Address Overview

The Address interface provides an abstraction for a unit-e payment address.
This package provides implementations for the pay-to-pubkey-hash and
pay-to-script-hash base58 address types as well as the bech32 encoded
pay-to-witness-pubkey-hash type the proposer pays rewards to.  Every address
carries enough information to reconstruct the script that pays to it.
*/
package uteutil
