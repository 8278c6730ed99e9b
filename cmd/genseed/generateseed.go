// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genseed generates a wallet seed and derives a staking key from it, along
// with the matching payout address.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/hdkeychain/v3"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/uteutil"
)

var (
	size = flag.Uint("size", hdkeychain.RecommendedSeedLen,
		"Seed size in bytes, between 16 and 64")
	testnet = flag.Bool("testnet", false,
		"Derive the staking address for the test network")
	regtest = flag.Bool("regtest", false,
		"Derive the staking address for the regression test network")
)

func main() {
	flag.Parse()

	params := chaincfg.MainNetParams()
	switch {
	case *testnet && *regtest:
		fmt.Fprintln(os.Stderr, "the testnet and regtest flags can't be "+
			"used together -- choose one of the two")
		os.Exit(1)
	case *testnet:
		params = chaincfg.TestNetParams()
	case *regtest:
		params = chaincfg.RegNetParams()
	}

	if *size < hdkeychain.MinSeedBytes || *size > hdkeychain.MaxSeedBytes {
		fmt.Fprintf(os.Stderr, "seed size %d is not between %d and %d\n",
			*size, hdkeychain.MinSeedBytes, hdkeychain.MaxSeedBytes)
		os.Exit(1)
	}
	seed, err := hdkeychain.GenerateSeed(uint8(*size))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The staking key is the first hardened child of the master key, so the
	// seed alone restores it.
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	child, err := master.Child(hdkeychain.HardenedKeyStart)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	serialized, err := child.SerializedPrivKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	privKey := secp256k1.PrivKeyFromBytes(serialized)
	pkHash := uteutil.Hash160(privKey.PubKey().SerializeCompressed())
	addr, err := uteutil.NewAddressWitnessPubKeyHash(pkHash, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Seed:            %x\n", seed)
	fmt.Printf("Staking key:     %x\n", serialized)
	fmt.Printf("Staking address: %s\n", addr)
}
