// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/unite-org/united/wire"
)

// RegNetParams returns the network parameters for the regression test
// network.  This should not be confused with the public test network.  The
// purpose of this network is primarily for unit tests and local integration
// harnesses that need full control over block production.
//
// Since this network is only intended for testing, its values are subject to
// change even if it would cause a hard fork.
func RegNetParams() *Params {
	params := MainNetParams()
	params.Name = "regnet"
	params.Net = wire.RegNet

	// regNetPowLimitBits is the highest allowed target difficulty for a
	// regression test network block in its compact representation.  It is
	// the value:
	//
	// 0x7fffff0000000000000000000000000000000000000000000000000000000000
	//
	// With a target this large nearly every kernel qualifies, so a single
	// staked coin can produce blocks without delay.
	params.PowLimitBits = 0x207fffff // 545259519

	// Maturity requirements
	params.CoinbaseMaturity = 1
	params.StakeMaturity = 2

	// Mempool parameters
	params.RelayNonStdTxs = true

	// Block production defaults.  Blocks are produced on demand so test
	// harnesses control the pace of the chain, and nodes stay passive
	// unless proposing is requested explicitly.
	params.MineBlocksOnDemand = true
	params.DefaultSettings.Proposing = false

	// Address encoding magics
	params.PubKeyHashAddrID = 0x3c // starts with R
	params.ScriptHashAddrID = 0x26 // starts with G
	params.PrivateKeyID = 0xec     // starts with 8 (uncompressed) or b (compressed)

	// BIP32 hierarchical deterministic extended key magics
	params.HDPrivateKeyID = [4]byte{0x04, 0x5f, 0x18, 0xbc} // starts with vprv
	params.HDPublicKeyID = [4]byte{0x04, 0x5f, 0x1c, 0xf6}  // starts with vpub

	// Human-readable part for Bech32 encoded segwit addresses
	params.Bech32HRPSegwit = "uert"

	assertSupplyInvariant(params)

	builder := NewGenesisBlockBuilder()
	builder.SetTimestamp(time.Unix(1735696800, 0)) // 2025-01-01 02:00:00 +0000 UTC
	builder.AddFunds(GenesisLedgerRegNet...)
	genesisBlock, err := builder.Build(params)
	if err != nil {
		panic(err)
	}
	params.GenesisBlock = genesisBlock
	params.GenesisHash = genesisBlock.BlockHash()
	return params
}
