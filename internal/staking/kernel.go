// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"encoding/binary"
	"math/big"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"lukechampine.com/blake3"

	"github.com/unite-org/united/wire"
)

// KernelDigest produces the lottery draw for a stakeable coin in a proposal
// slot.  The digest commits to the parent block's stake modifier, the staked
// outpoint, and the slot timestamp, so each coin has exactly one draw per
// slot and a draw from one branch of the chain is worthless on another.
func KernelDigest(stakeModifier *chainhash.Hash, outpoint *wire.OutPoint, slotTime time.Time) chainhash.Hash {
	var scratch [4]byte
	buf := make([]byte, 0, 2*chainhash.HashSize+8)
	buf = append(buf, stakeModifier[:]...)
	buf = append(buf, outpoint.Hash[:]...)
	binary.LittleEndian.PutUint32(scratch[:], outpoint.Index)
	buf = append(buf, scratch[:]...)
	binary.LittleEndian.PutUint32(scratch[:], uint32(slotTime.Unix()))
	buf = append(buf, scratch[:]...)
	return chainhash.Hash(blake3.Sum256(buf))
}

// CheckKernel returns whether the provided kernel digest wins against the
// target difficulty described by the compact bits when weighted by the
// staked amount in atoms.  The digest wins when its numeric value does not
// exceed the target multiplied by the amount.
//
// Non-positive amounts and compact bits that decode to a non-positive target
// never win.
func CheckKernel(digest *chainhash.Hash, bits uint32, amount int64) bool {
	if amount <= 0 {
		return false
	}
	target := standalone.CompactToBig(bits)
	if target.Sign() <= 0 {
		return false
	}
	target.Mul(target, big.NewInt(amount))
	return standalone.HashToBig(digest).Cmp(target) <= 0
}

// NextStakeModifier derives the stake modifier carried by a block that
// stakes the provided outpoint on top of a parent carrying parentModifier.
// The genesis block carries the zero modifier.
func NextStakeModifier(parentModifier *chainhash.Hash, stakedOutpoint *wire.OutPoint) chainhash.Hash {
	var scratch [4]byte
	buf := make([]byte, 0, 2*chainhash.HashSize+4)
	buf = append(buf, parentModifier[:]...)
	buf = append(buf, stakedOutpoint.Hash[:]...)
	binary.LittleEndian.PutUint32(scratch[:], stakedOutpoint.Index)
	buf = append(buf, scratch[:]...)
	return chainhash.HashH(buf)
}
