// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2016-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/unite-org/united/wire"
)

// TestSupplyInvariant ensures the monetary constants of every network agree
// with each other: the maximum supply must equal the initial supply plus the
// total emission of the reward schedule.
func TestSupplyInvariant(t *testing.T) {
	for _, params := range []*Params{MainNetParams(), TestNetParams(),
		RegNetParams()} {

		var scheduled int64
		for _, reward := range params.RewardSchedule {
			scheduled += reward * params.PeriodBlocks
		}
		if got := params.InitialSupply + scheduled; got != params.MaximumSupply {
			t.Errorf("%s: initial supply plus scheduled emission is %d, "+
				"maximum supply is %d", params.Name, got,
				params.MaximumSupply)
		}
	}

	// The networks deliberately share a single monetary policy.
	params := MainNetParams()
	if params.InitialSupply != 150000000000000000 {
		t.Errorf("unexpected initial supply: %d", params.InitialSupply)
	}
	if params.MaximumSupply != 271827510000000000 {
		t.Errorf("unexpected maximum supply: %d", params.MaximumSupply)
	}
	if params.PeriodBlocks != 19710000 {
		t.Errorf("unexpected period length: %d", params.PeriodBlocks)
	}
}

// TestSupplyInvariantPanic ensures a violation of the supply invariant is
// treated as a fatal configuration error.
func TestSupplyInvariantPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("assertSupplyInvariant did not panic as expected")
		}
	}()

	params := MainNetParams()
	params.MaximumSupply++
	assertSupplyInvariant(params)
}

// TestCalcBlockReward ensures the reward schedule is applied to block heights
// as expected, including the boundaries between periods and heights past the
// end of the schedule.
func TestCalcBlockReward(t *testing.T) {
	params := MainNetParams()
	tests := []struct {
		name   string
		height int64
		want   int64
	}{
		{"negative height", -1, 0},
		{"genesis", 0, 3750000000},
		{"first block", 1, 3750000000},
		{"end of first period", 19709999, 3750000000},
		{"start of second period", 19710000, 1700000000},
		{"end of second period", 39419999, 1700000000},
		{"third period", 39420000, 550000000},
		{"fourth period", 59130000, 150000000},
		{"final period", 78840000, 31000000},
		{"end of final period", 98549999, 31000000},
		{"past the schedule", 98550000, 0},
		{"far future", 1 << 62, 0},
	}
	for _, test := range tests {
		got := params.RewardFunction(params, test.height)
		if got != test.want {
			t.Errorf("%q: unexpected reward for height %d - got %d, "+
				"want %d", test.name, test.height, got, test.want)
		}
	}
}

// TestTotalEmission walks the reward schedule period by period and ensures
// the cumulative emission converges on the maximum supply exactly.
func TestTotalEmission(t *testing.T) {
	params := MainNetParams()

	total := params.InitialSupply
	for period := range params.RewardSchedule {
		height := int64(period) * params.PeriodBlocks
		total += CalcBlockReward(params, height) * params.PeriodBlocks
	}
	if total != params.MaximumSupply {
		t.Fatalf("cumulative emission is %d, want %d", total,
			params.MaximumSupply)
	}
}

// fakeChain implements the ChainAccess interface over a fixed set of headers
// ordered from the tip backwards.
type fakeChain struct {
	headers []*wire.BlockHeader
}

func (c *fakeChain) AtDepth(depth int64) *wire.BlockHeader {
	if depth < 1 || depth > int64(len(c.headers)) {
		return nil
	}
	return c.headers[depth-1]
}

// TestCalcNextRequiredDifficulty ensures the difficulty policy echoes the tip
// difficulty and falls back to the difficulty limit on an empty chain.
func TestCalcNextRequiredDifficulty(t *testing.T) {
	params := MainNetParams()

	// No tip yet.
	bits, err := params.DifficultyFunction(params, 0, &fakeChain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != params.PowLimitBits {
		t.Fatalf("unexpected difficulty for empty chain - got %08x, "+
			"want %08x", bits, params.PowLimitBits)
	}

	// Tip difficulty is carried forward unchanged.
	chain := &fakeChain{headers: []*wire.BlockHeader{{
		Bits:   0x1b01ffff,
		Height: 41,
	}}}
	bits, err = params.DifficultyFunction(params, 42, chain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != 0x1b01ffff {
		t.Fatalf("unexpected difficulty - got %08x, want %08x", bits,
			uint32(0x1b01ffff))
	}
}

// TestNetworkParameters ensures the per network parameter values match the
// consensus values the networks were defined with.
func TestNetworkParameters(t *testing.T) {
	tests := []struct {
		name               string
		params             *Params
		net                wire.CurrencyNet
		coinbaseMaturity   uint16
		stakeMaturity      uint16
		powLimitBits       uint32
		relayNonStdTxs     bool
		mineBlocksOnDemand bool
		proposing          bool
		pubKeyHashAddrID   byte
		scriptHashAddrID   byte
		privateKeyID       byte
		hrp                string
	}{{
		name:             "mainnet",
		params:           MainNetParams(),
		net:              wire.MainNet,
		coinbaseMaturity: 100,
		stakeMaturity:    200,
		powLimitBits:     0x1d00ffff,
		proposing:        true,
		pubKeyHashAddrID: 0x00,
		scriptHashAddrID: 0x05,
		privateKeyID:     0x80,
		hrp:              "ue",
	}, {
		name:             "testnet",
		params:           TestNetParams(),
		net:              wire.TestNet,
		coinbaseMaturity: 10,
		stakeMaturity:    20,
		powLimitBits:     0x1d00ffff,
		relayNonStdTxs:   true,
		proposing:        true,
		pubKeyHashAddrID: 0x6f,
		scriptHashAddrID: 0xc4,
		privateKeyID:     0xef,
		hrp:              "tue",
	}, {
		name:               "regnet",
		params:             RegNetParams(),
		net:                wire.RegNet,
		coinbaseMaturity:   1,
		stakeMaturity:      2,
		powLimitBits:       0x207fffff,
		relayNonStdTxs:     true,
		mineBlocksOnDemand: true,
		pubKeyHashAddrID:   0x3c,
		scriptHashAddrID:   0x26,
		privateKeyID:       0xec,
		hrp:                "uert",
	}}

	for _, test := range tests {
		params := test.params
		if params.Name != test.name {
			t.Errorf("%s: unexpected name %q", test.name, params.Name)
		}
		if params.Net != test.net {
			t.Errorf("%s: unexpected net %v", test.name, params.Net)
		}
		if params.CoinbaseMaturity != test.coinbaseMaturity {
			t.Errorf("%s: unexpected coinbase maturity %d", test.name,
				params.CoinbaseMaturity)
		}
		if params.StakeMaturity != test.stakeMaturity {
			t.Errorf("%s: unexpected stake maturity %d", test.name,
				params.StakeMaturity)
		}
		if params.PowLimitBits != test.powLimitBits {
			t.Errorf("%s: unexpected difficulty limit %08x", test.name,
				params.PowLimitBits)
		}
		if params.RelayNonStdTxs != test.relayNonStdTxs {
			t.Errorf("%s: unexpected non standard relay policy %v",
				test.name, params.RelayNonStdTxs)
		}
		if params.MineBlocksOnDemand != test.mineBlocksOnDemand {
			t.Errorf("%s: unexpected on demand flag %v", test.name,
				params.MineBlocksOnDemand)
		}
		if params.DefaultSettings.Proposing != test.proposing {
			t.Errorf("%s: unexpected proposing default %v", test.name,
				params.DefaultSettings.Proposing)
		}
		if params.PubKeyHashAddrID != test.pubKeyHashAddrID {
			t.Errorf("%s: unexpected p2pkh prefix %#02x", test.name,
				params.PubKeyHashAddrID)
		}
		if params.ScriptHashAddrID != test.scriptHashAddrID {
			t.Errorf("%s: unexpected p2sh prefix %#02x", test.name,
				params.ScriptHashAddrID)
		}
		if params.PrivateKeyID != test.privateKeyID {
			t.Errorf("%s: unexpected private key prefix %#02x", test.name,
				params.PrivateKeyID)
		}
		if params.Bech32HRPSegwit != test.hrp {
			t.Errorf("%s: unexpected bech32 prefix %q", test.name,
				params.Bech32HRPSegwit)
		}

		// Values every network shares.
		if params.TargetTimePerBlock != time.Second*16 {
			t.Errorf("%s: unexpected block interval %v", test.name,
				params.TargetTimePerBlock)
		}
		if params.StakeTimestampInterval != time.Second*16 {
			t.Errorf("%s: unexpected stake timestamp interval %v",
				test.name, params.StakeTimestampInterval)
		}
		if params.MaxFutureBlockTime != time.Hour*2 {
			t.Errorf("%s: unexpected future block allowance %v",
				test.name, params.MaxFutureBlockTime)
		}
		if params.MaximumBlockSize != 1000000 {
			t.Errorf("%s: unexpected maximum block size %d", test.name,
				params.MaximumBlockSize)
		}
		if params.MaximumBlockWeight != 4000000 {
			t.Errorf("%s: unexpected maximum block weight %d", test.name,
				params.MaximumBlockWeight)
		}
		if params.MaximumBlockSerializedSize != 4000000 {
			t.Errorf("%s: unexpected maximum serialized size %d",
				test.name, params.MaximumBlockSerializedSize)
		}
		if params.MaximumBlockSigOpsCost != 80000 {
			t.Errorf("%s: unexpected maximum sigops cost %d", test.name,
				params.MaximumBlockSigOpsCost)
		}
		if params.RuleChangeActivationThreshold != 1916 {
			t.Errorf("%s: unexpected rule change threshold %d",
				test.name, params.RuleChangeActivationThreshold)
		}
		if params.MinerConfirmationWindow != 2016 {
			t.Errorf("%s: unexpected confirmation window %d", test.name,
				params.MinerConfirmationWindow)
		}
		if params.RewardFunction == nil || params.DifficultyFunction == nil {
			t.Errorf("%s: policy function not bound", test.name)
		}
	}
}

// TestConstructorsReturnFreshInstances ensures every constructor call
// produces an independent instance so no caller can affect another through
// shared state.
func TestConstructorsReturnFreshInstances(t *testing.T) {
	first := MainNetParams()
	second := MainNetParams()
	if first == second {
		t.Fatal("constructor returned a shared instance")
	}
	if first.GenesisBlock == second.GenesisBlock {
		t.Fatal("constructor returned a shared genesis block")
	}

	first.CoinbaseMaturity = 9999
	if second.CoinbaseMaturity == 9999 {
		t.Fatal("mutating one instance affected another")
	}
}
