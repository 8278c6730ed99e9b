// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/unite-org/united/wire"
)

// ChainAccess provides read-only access to the headers of the chain a policy
// function is being evaluated against.  Implementations are expected to be
// kept consistent by the caller for the duration of a single call but may
// advance between calls.
type ChainAccess interface {
	// AtDepth returns the header of the block at the given depth below the
	// current tip, where depth 1 is the tip itself, depth 2 its parent, and
	// so on.  It returns nil when no block exists at that depth.
	AtDepth(depth int64) *wire.BlockHeader
}

// RewardFunc computes the emission amount, in atoms, created by the block at
// the provided height.  Implementations must be pure: the result may depend
// only on the parameters and the height.
type RewardFunc func(params *Params, height int64) int64

// DifficultyFunc computes the required difficulty, in compact form, of a
// block at the provided height extending the chain exposed by the given
// view.  Implementations must be pure given the state of the view at call
// time.
type DifficultyFunc func(params *Params, height int64, chain ChainAccess) (uint32, error)

// NodeSettings defines the default node behavior for a network.  Operators
// may override these through configuration; the zero value is not meaningful
// since defaults intentionally differ per network.
type NodeSettings struct {
	// Proposing indicates whether the node takes part in block proposing
	// by default.
	Proposing bool
}

// Params defines a unit-e network by its parameters.  These parameters may be
// used by unit-e applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// An instance is created once by its constructor function and must be treated
// as immutable afterwards.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CurrencyNet

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// StakeTimestampInterval is the coarseness of the timestamp grid for
	// proof-of-stake kernels.  Block timestamps must be whole multiples of
	// this interval and each staked coin has exactly one kernel per grid
	// slot, which is what keeps stakers from grinding timestamps.
	StakeTimestampInterval time.Duration

	// MaxFutureBlockTime is the maximum amount a block timestamp may be
	// ahead of the receiving node's adjusted time to still be accepted.
	MaxFutureBlockTime time.Duration

	// MaximumBlockSize is the maximum size of the base data of a block in
	// bytes.
	MaximumBlockSize int

	// MaximumBlockWeight is the maximum weight of a block, where weight is
	// the consensus cost measure that prices witness data lower than base
	// data.
	MaximumBlockWeight int

	// MaximumBlockSerializedSize is the maximum number of bytes a block
	// may occupy when serialized with all data.
	MaximumBlockSerializedSize int

	// MaximumBlockSigOpsCost is the maximum signature operation cost of
	// all transactions in a block.
	MaximumBlockSigOpsCost int

	// RelayNonStdTxs defines whether the default policy is to relay
	// transactions with non-standard scripts.
	RelayNonStdTxs bool

	// MineBlocksOnDemand specifies whether blocks are produced on demand
	// instead of on the stake timestamp schedule.  This is only set on the
	// regression test network.
	MineBlocksOnDemand bool

	// CoinbaseMaturity is the number of blocks required before newly
	// created coins can be spent.
	CoinbaseMaturity uint16

	// StakeMaturity is the number of blocks required before newly created
	// coins may be used as the staking input of a proposed block.
	StakeMaturity uint16

	// InitialSupply is the number of atoms disbursed by the genesis block.
	InitialSupply int64

	// RewardSchedule lists the per-block emission, in atoms, for each
	// consecutive period of PeriodBlocks blocks.  Blocks past the end of
	// the schedule create no new coins.
	RewardSchedule []int64

	// PeriodBlocks is the number of blocks each entry of RewardSchedule
	// remains in effect for.
	PeriodBlocks int64

	// MaximumSupply is the total number of atoms that can ever exist:
	// the initial supply plus every scheduled emission.  The constructors
	// verify this equality and refuse to start otherwise.
	MaximumSupply int64

	// RuleChangeActivationThreshold is the number of blocks in a
	// confirmation window that must signal for a rule change in order to
	// lock in the change.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in a rule change
	// confirmation window.
	MinerConfirmationWindow uint32

	// PowLimitBits defines the highest allowed target difficulty value
	// for a block in compact form.  It is also the difficulty of the
	// genesis block.
	PowLimitBits uint32

	// RewardFunction is the emission policy bound to this network.
	RewardFunction RewardFunc

	// DifficultyFunction is the difficulty policy bound to this network.
	DifficultyFunction DifficultyFunc

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.  It is computed once when
	// the parameters are constructed and never recomputed, so it remains
	// authoritative even if the block structure were mutated by a caller
	// in violation of the immutability contract.
	GenesisHash chainhash.Hash

	// Address encoding magics.
	PubKeyHashAddrID byte    // First byte of a P2PKH address
	ScriptHashAddrID byte    // First byte of a P2SH address
	PrivateKeyID     byte    // First byte of a WIF private key
	HDPrivateKeyID   [4]byte // First 4 bytes of an extended private key
	HDPublicKeyID    [4]byte // First 4 bytes of an extended public key

	// Human-readable part for Bech32 encoded segwit addresses.
	Bech32HRPSegwit string

	// DefaultSettings holds the node behavior defaults for this network.
	DefaultSettings NodeSettings
}

// HDPrivKeyVersion returns the hierarchical deterministic extended private key
// magic prefix bytes for the network the parameters define.
func (p *Params) HDPrivKeyVersion() [4]byte {
	return p.HDPrivateKeyID
}

// HDPubKeyVersion returns the hierarchical deterministic extended public key
// magic prefix bytes for the network the parameters define.
func (p *Params) HDPubKeyVersion() [4]byte {
	return p.HDPublicKeyID
}

// CalcBlockReward returns the emission amount, in atoms, created by the block
// at the provided height: the reward schedule entry for the period the height
// falls in, or zero for heights past the end of the schedule.  It is the
// reward policy bound to every network by default.
func CalcBlockReward(params *Params, height int64) int64 {
	if height < 0 {
		return 0
	}

	period := height / params.PeriodBlocks
	if period >= int64(len(params.RewardSchedule)) {
		return 0
	}
	return params.RewardSchedule[period]
}

// CalcNextRequiredDifficulty returns the required difficulty, in compact
// form, for a block extending the chain exposed by the provided view.
//
// The policy currently performs no retargeting: it echoes the difficulty of
// the current tip, falling back to the difficulty limit when the view is
// empty.  It is bound per network through Params.DifficultyFunction precisely
// so a retargeting policy can replace it without touching the proposer.
func CalcNextRequiredDifficulty(params *Params, height int64, chain ChainAccess) (uint32, error) {
	tip := chain.AtDepth(1)
	if tip == nil {
		return params.PowLimitBits, nil
	}
	return tip.Bits, nil
}

// assertSupplyInvariant verifies that the maximum supply equals the initial
// supply plus the total emission of the reward schedule and panics otherwise.
// A violation means the hard-coded monetary constants disagree with each
// other, which must abort startup before any of them can take effect.
func assertSupplyInvariant(p *Params) {
	var scheduled int64
	for _, reward := range p.RewardSchedule {
		scheduled += reward * p.PeriodBlocks
	}
	if want := p.InitialSupply + scheduled; p.MaximumSupply != want {
		panic(fmt.Sprintf("%s: maximum supply %d does not match initial "+
			"supply plus scheduled emission %d", p.Name,
			p.MaximumSupply, want))
	}
}

// hexDecode decodes the passed hex string and panics if there is an error.
// This is only provided for hard-coded constants so errors in the source code
// can be detected.  It will only (and must only) be called with hard-coded
// values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
