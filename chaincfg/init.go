// Copyright (c) 2017-2019 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/unite-org/united/wire"
)

var (
	errDuplicateNet         = errors.New("duplicate network magic")
	errDuplicateAddrID      = errors.New("duplicate address prefix")
	errDuplicateKeyID       = errors.New("duplicate private key prefix")
	errDuplicateHDKeyID     = errors.New("duplicate extended key magic")
	errDuplicateHRP         = errors.New("duplicate bech32 prefix")
	errDuplicateGenesisHash = errors.New("duplicate genesis hash")
)

// validateNetworkIdentities ensures every value that distinguishes one
// network from another is pairwise distinct across all of the provided
// networks.  A collision would let addresses, keys, or wire traffic intended
// for one network be mistaken for another, so any violation is a programming
// error that must abort startup.
func validateNetworkIdentities(allParams []*Params) {
	report := func(err error, params *Params, value interface{}) {
		panic(fmt.Sprintf("%v on %v: %v", err, params.Name, value))
	}

	nets := make(map[wire.CurrencyNet]struct{})
	addrIDs := make(map[byte]struct{})
	keyIDs := make(map[byte]struct{})
	hdKeyIDs := make(map[[4]byte]struct{})
	hrps := make(map[string]struct{})
	genesisHashes := make(map[chainhash.Hash]struct{})
	for _, params := range allParams {
		if _, ok := nets[params.Net]; ok {
			report(errDuplicateNet, params, params.Net)
		}
		nets[params.Net] = struct{}{}

		// Pay-to-pubkey-hash and pay-to-script-hash prefixes share a
		// namespace since either may lead a base58 address.
		if _, ok := addrIDs[params.PubKeyHashAddrID]; ok {
			report(errDuplicateAddrID, params, params.PubKeyHashAddrID)
		}
		addrIDs[params.PubKeyHashAddrID] = struct{}{}
		if _, ok := addrIDs[params.ScriptHashAddrID]; ok {
			report(errDuplicateAddrID, params, params.ScriptHashAddrID)
		}
		addrIDs[params.ScriptHashAddrID] = struct{}{}

		if _, ok := keyIDs[params.PrivateKeyID]; ok {
			report(errDuplicateKeyID, params, params.PrivateKeyID)
		}
		keyIDs[params.PrivateKeyID] = struct{}{}

		if _, ok := hdKeyIDs[params.HDPrivateKeyID]; ok {
			report(errDuplicateHDKeyID, params, params.HDPrivateKeyID)
		}
		hdKeyIDs[params.HDPrivateKeyID] = struct{}{}
		if _, ok := hdKeyIDs[params.HDPublicKeyID]; ok {
			report(errDuplicateHDKeyID, params, params.HDPublicKeyID)
		}
		hdKeyIDs[params.HDPublicKeyID] = struct{}{}

		if _, ok := hrps[params.Bech32HRPSegwit]; ok {
			report(errDuplicateHRP, params, params.Bech32HRPSegwit)
		}
		hrps[params.Bech32HRPSegwit] = struct{}{}

		if _, ok := genesisHashes[params.GenesisHash]; ok {
			report(errDuplicateGenesisHash, params, params.GenesisHash)
		}
		genesisHashes[params.GenesisHash] = struct{}{}
	}
}

func init() {
	validateNetworkIdentities([]*Params{MainNetParams(), TestNetParams(),
		RegNetParams()})
}
