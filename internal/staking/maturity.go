// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

// IsStakeable returns whether a coin confirmed at coinHeight has matured
// enough to stake a block on top of a chain tip at tipHeight.  A coin is
// mature once at least stakeMaturity blocks lie between the block that
// confirmed it and the tip.
//
// Coins from the genesis block are always stakeable.  Without that carve-out
// no network could produce its early blocks, since every premined coin would
// still be maturing.
func IsStakeable(coinHeight, tipHeight int64, stakeMaturity uint16) bool {
	if coinHeight == 0 {
		return true
	}
	if coinHeight < 0 || coinHeight > tipHeight {
		return false
	}
	return tipHeight-coinHeight >= int64(stakeMaturity)
}
