// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/unite-org/united/wire"
)

// MainNetParams returns the network parameters for the main unit-e network.
func MainNetParams() *Params {
	// mainPowLimitBits is the highest allowed target difficulty for a main
	// network block in its compact representation.  It is the value:
	//
	// 0x00000000ffff0000000000000000000000000000000000000000000000000000
	const mainPowLimitBits = 0x1d00ffff // 486604799

	params := Params{
		Name: "mainnet",
		Net:  wire.MainNet,

		// Chain parameters
		TargetTimePerBlock:     time.Second * 16,
		StakeTimestampInterval: time.Second * 16,
		MaxFutureBlockTime:     time.Hour * 2,
		PowLimitBits:           mainPowLimitBits,

		// Block size and cost limits
		MaximumBlockSize:           1000000,
		MaximumBlockWeight:         4000000,
		MaximumBlockSerializedSize: 4000000,
		MaximumBlockSigOpsCost:     80000,

		// Maturity requirements
		CoinbaseMaturity: 100,
		StakeMaturity:    200,

		// Supply parameters.  Each reward schedule entry is the per block
		// emission, in atoms, for one period of PeriodBlocks blocks.  The
		// maximum supply must equal the initial supply plus the total
		// scheduled emission; every constructor asserts this before the
		// values can take effect.
		InitialSupply: 1500000000 * 1e8,
		RewardSchedule: []int64{
			3750000000, // blocks 0 - 19709999
			1700000000, // blocks 19710000 - 39419999
			550000000,  // blocks 39420000 - 59129999
			150000000,  // blocks 59130000 - 78839999
			31000000,   // blocks 78840000 - 98549999
		},
		PeriodBlocks:  19710000, // 10 years of 16 second blocks
		MaximumSupply: 2718275100 * 1e8,

		// Policy functions
		RewardFunction:     CalcBlockReward,
		DifficultyFunction: CalcNextRequiredDifficulty,

		// Consensus rule change parameters
		RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       2016,

		// Mempool parameters
		RelayNonStdTxs: false,

		// Block production defaults
		MineBlocksOnDemand: false,

		// Address encoding magics
		PubKeyHashAddrID: 0x00, // starts with 1
		ScriptHashAddrID: 0x05, // starts with 3
		PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		// Human-readable part for Bech32 encoded segwit addresses
		Bech32HRPSegwit: "ue",

		// Node behavior defaults
		DefaultSettings: NodeSettings{
			Proposing: true,
		},
	}
	assertSupplyInvariant(&params)

	// The genesis block is valid by definition and none of the fields
	// within it are validated for correctness.  The only values that are
	// ever used elsewhere in the block chain from it are:
	// (1) The genesis block hash is used as the PrevBlock of block one.
	// (2) The difficulty starts off at the value given by Bits.
	// (3) The stake modifier chain starts off at the all zero modifier.
	// (4) The outputs of its disbursal transaction become the stakeable
	//     premine.
	builder := NewGenesisBlockBuilder()
	builder.SetTimestamp(time.Unix(1735689600, 0)) // 2025-01-01 00:00:00 +0000 UTC
	builder.AddFunds(GenesisLedgerMainNet...)
	genesisBlock, err := builder.Build(&params)
	if err != nil {
		panic(err)
	}
	params.GenesisBlock = genesisBlock
	params.GenesisHash = genesisBlock.BlockHash()
	return &params
}
