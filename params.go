// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/unite-org/united/chaincfg"
)

// params is used to group parameters for various networks such as the main
// network and test networks.
type params struct {
	*chaincfg.Params

	// dataDirName is the name of the directory, under the application home
	// directory, that namespaces all data the node keeps for the network.
	dataDirName string
}

// mainNetParams contains parameters specific to the main network.
var mainNetParams = params{
	Params:      chaincfg.MainNetParams(),
	dataDirName: "mainnet",
}

// testNetParams contains parameters specific to the test network.
var testNetParams = params{
	Params:      chaincfg.TestNetParams(),
	dataDirName: "testnet",
}

// regNetParams contains parameters specific to the regression test network.
var regNetParams = params{
	Params:      chaincfg.RegNetParams(),
	dataDirName: "regnet",
}

// activeNetParams is a pointer to the parameters specific to the currently
// active network.  It is set once during configuration load and stays fixed
// for the lifetime of the process.
var activeNetParams = &mainNetParams
