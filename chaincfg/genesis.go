// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/unite-org/united/wire"
)

// GenesisBlockBuilder constructs the first block of a chain from a list of
// funds to disburse.  A builder may only produce a single block: Build fails
// once it has succeeded, so a block and its hash are computed exactly once
// and the cached values in Params stay authoritative.
//
// The zero value is not usable.  Use NewGenesisBlockBuilder.
type GenesisBlockBuilder struct {
	version   int32
	timestamp time.Time
	funds     []*GenesisFund
	built     bool
}

// NewGenesisBlockBuilder returns a genesis block builder with the default
// block version and a zero timestamp.  Callers are expected to set the
// per-network timestamp and add the funds to disburse before building.
func NewGenesisBlockBuilder() *GenesisBlockBuilder {
	return &GenesisBlockBuilder{version: 1}
}

// SetVersion sets the version of the block to build.
func (b *GenesisBlockBuilder) SetVersion(version int32) {
	b.version = version
}

// SetTimestamp sets the timestamp of the block to build.  The timestamp is
// truncated to second precision since that is all the wire format carries.
func (b *GenesisBlockBuilder) SetTimestamp(timestamp time.Time) {
	b.timestamp = time.Unix(timestamp.Unix(), 0)
}

// AddFunds adds the provided funds to the list the built block will
// disburse.  Each fund becomes one output of the disbursal transaction, in
// the order added.
func (b *GenesisBlockBuilder) AddFunds(funds ...*GenesisFund) {
	b.funds = append(b.funds, funds...)
}

// Build constructs the genesis block for the provided network parameters
// from the accumulated funds and consumes the builder.
//
// The block carries a single coinbase-style transaction that spends a null
// previous outpoint and pays each fund to a pay-to-witness-pubkey-hash
// output.  The header commits to the params' difficulty limit, a zero
// parent hash, and a zero stake modifier.  The result is fully determined
// by the funds, the timestamp, and the params, so every node building the
// same network arrives at the same block hash.
//
// The returned error has kind ErrGenesisBuilderReused when the builder has
// already built a block, ErrNoGenesisFunds when no funds were added, and
// ErrBadFundTotal when the funds do not sum to the params' initial supply.
func (b *GenesisBlockBuilder) Build(params *Params) (*wire.MsgBlock, error) {
	if b.built {
		return nil, makeError(ErrGenesisBuilderReused, "genesis block "+
			"builder may only build a single block")
	}
	if len(b.funds) == 0 {
		return nil, makeError(ErrNoGenesisFunds, "genesis block must "+
			"disburse at least one fund")
	}
	var total int64
	for _, fund := range b.funds {
		total += fund.Amount
	}
	if total != params.InitialSupply {
		str := fmt.Sprintf("genesis funds total %d atoms, initial "+
			"supply is %d atoms", total, params.InitialSupply)
		return nil, makeError(ErrBadFundTotal, str)
	}

	tx := wire.NewMsgTx()
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		// Consensus requires coinbase signature scripts to be at
		// least two bytes.
		SignatureScript: []byte{0x00, 0x00},
		Sequence:        wire.MaxTxInSequenceNum,
	})
	for _, fund := range b.funds {
		tx.AddTxOut(&wire.TxOut{
			Value:    fund.Amount,
			PkScript: payToWitnessPubKeyHashScript(fund.PubKeyHash),
		})
	}

	merkleRoot := standalone.CalcMerkleRoot([]chainhash.Hash{tx.TxHash()})
	header := wire.BlockHeader{
		Version:    b.version,
		MerkleRoot: merkleRoot,
		Timestamp:  b.timestamp,
		Bits:       params.PowLimitBits,
		Height:     0,
	}
	block := wire.NewMsgBlock(&header)
	block.AddTransaction(tx)
	b.built = true
	return block, nil
}

// payToWitnessPubKeyHashScript returns a version 0 witness program paying to
// the provided 20-byte public key hash.
func payToWitnessPubKeyHashScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 22)
	script = append(script, 0x00, 0x14) // OP_0 OP_DATA_20
	return append(script, pubKeyHash...)
}
