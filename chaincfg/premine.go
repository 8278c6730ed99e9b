// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// GenesisFund is a payout in the genesis block which specifies an amount, in
// atoms, to pay to the pay-to-witness-pubkey-hash output with the provided
// public key hash.
type GenesisFund struct {
	PubKeyHash []byte
	Amount     int64
}

// GenesisLedgerMainNet is the genesis block payout ledger for the main
// network.  The amounts sum to the initial supply.
var GenesisLedgerMainNet = []*GenesisFund{
	{hexDecode("2f9a03e1cc40b57a68d8ff71b1903a8cd9f24c6e"), 300000000 * 1e8},
	{hexDecode("71c06dfd4dbe2e9f0b5c34a2f07e9c1d84ab3c55"), 300000000 * 1e8},
	{hexDecode("e41b20c5977d9a844f2b8b1cd0ba60a87cf1e830"), 300000000 * 1e8},
	{hexDecode("0c3de56a188142c7ba7a63f1490674e4e710f2d9"), 300000000 * 1e8},
	{hexDecode("9b87aa14ec3f2750c16babf0e51feed8cda37b06"), 300000000 * 1e8},
}

// GenesisLedgerTestNet is the genesis block payout ledger for the test
// network.
var GenesisLedgerTestNet = []*GenesisFund{
	{hexDecode("4de0913fa20b7c2e8c751de5a8a24cd0e1f65d17"), 375000000 * 1e8},
	{hexDecode("b35f8e06c4da9e227301ab377f1a5526c2f9d84b"), 375000000 * 1e8},
	{hexDecode("66a7dcf4550e2c190d34b2e07dd37c81270993ee"), 375000000 * 1e8},
	{hexDecode("d1184ff06a2a78cab6e9be402d8f15691dbb4588"), 375000000 * 1e8},
}

// GenesisLedgerRegNet is the genesis block payout ledger for the regression
// test network.  The keys for these outputs are well known on purpose so
// test harnesses can stake and spend the premine.  Three funds keep a solo
// staking node live under the two block stake maturity: while two stakebase
// payouts mature, a third coin is available to propose.
var GenesisLedgerRegNet = []*GenesisFund{
	{hexDecode("8b12e9f4401c7a55db60be58ef3f77c2aa8e049d"), 500000000 * 1e8},
	{hexDecode("37d5a0ce6242b89c10fb75d012a3c93eb1d604f0"), 500000000 * 1e8},
	{hexDecode("c4a1f2d87b903e5516cd0a2e94f1bb68d2c7355a"), 500000000 * 1e8},
}
