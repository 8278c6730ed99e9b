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

// TestNetParams returns the network parameters for the public test network.
// The test network is defined as the main network with every deviation
// listed explicitly here, so the two cannot drift apart silently.
func TestNetParams() *Params {
	params := MainNetParams()
	params.Name = "testnet"
	params.Net = wire.TestNet

	// Maturity requirements
	params.CoinbaseMaturity = 10
	params.StakeMaturity = 20

	// Mempool parameters
	params.RelayNonStdTxs = true

	// Address encoding magics
	params.PubKeyHashAddrID = 0x6f // starts with m or n
	params.ScriptHashAddrID = 0xc4 // starts with 2
	params.PrivateKeyID = 0xef     // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	params.HDPrivateKeyID = [4]byte{0x04, 0x35, 0x83, 0x94} // starts with tprv
	params.HDPublicKeyID = [4]byte{0x04, 0x35, 0x87, 0xcf}  // starts with tpub

	// Human-readable part for Bech32 encoded segwit addresses
	params.Bech32HRPSegwit = "tue"

	assertSupplyInvariant(params)

	builder := NewGenesisBlockBuilder()
	builder.SetTimestamp(time.Unix(1735693200, 0)) // 2025-01-01 01:00:00 +0000 UTC
	builder.AddFunds(GenesisLedgerTestNet...)
	genesisBlock, err := builder.Build(params)
	if err != nil {
		panic(err)
	}
	params.GenesisBlock = genesisBlock
	params.GenesisHash = genesisBlock.BlockHash()
	return params
}
