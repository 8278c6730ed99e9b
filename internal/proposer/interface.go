// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/unite-org/united/wire"
)

// Snapshot describes the state of the chain tip at a single point in time.
// The tip may move the moment the snapshot is taken, which is why the
// proposer re-checks it before publishing.
type Snapshot struct {
	// Hash is the block hash of the tip.
	Hash chainhash.Hash

	// Height is the height of the tip.
	Height int64

	// Header is the full header of the tip.
	Header wire.BlockHeader
}

// ActiveChain provides read access to the chain being extended.
//
// The interface contract requires that all of these methods are safe for
// concurrent access.
type ActiveChain interface {
	// BestSnapshot returns the current tip of the chain.  The result is
	// never nil since every chain starts at its genesis block.
	BestSnapshot() *Snapshot

	// AtDepth returns the header of the block at the given depth below the
	// tip, where depth 1 is the tip itself, depth 2 its parent, and so on.
	// It returns nil when no block exists at that depth.
	AtDepth(depth int64) *wire.BlockHeader
}

// BlockPublisher hands finished blocks to whatever propagates them.  In a
// full node this submits the block to the local consensus processing which
// in turn relays it to the network.
type BlockPublisher interface {
	// Broadcast publishes the provided block.  A non-nil error means the
	// block was not accepted.
	Broadcast(block *wire.MsgBlock) error
}

// SelectionLimits bound the transactions chosen for inclusion in a block.
// The limits come from the consensus parameters of the active network.
type SelectionLimits struct {
	// MaxSize is the maximum accumulated size, in bytes, of the base data
	// of the selected transactions.
	MaxSize int

	// MaxWeight is the maximum accumulated weight of the selected
	// transactions.
	MaxWeight int

	// MaxSigOpsCost is the maximum accumulated signature operation cost of
	// the selected transactions.
	MaxSigOpsCost int
}

// TxSelector represents a source of transactions to consider for inclusion
// in new blocks.
//
// The interface contract requires that all of these methods are safe for
// concurrent access with respect to the source.
type TxSelector interface {
	// SelectCandidates returns the transactions to include in a block
	// while respecting the provided limits.  The stakebase transaction is
	// not part of the selection and is added by the assembler.
	SelectCandidates(limits SelectionLimits) []*wire.MsgTx
}

// StakeableCoin describes an unspent output the wallet is able and willing
// to stake, along with the key material needed to claim it.
type StakeableCoin struct {
	// OutPoint identifies the unspent output being staked.
	OutPoint wire.OutPoint

	// Amount is the value of the output in atoms.  It weights the stake
	// target of every kernel the coin produces.
	Amount int64

	// BlockHeight is the height of the block that confirmed the output.
	// It decides the maturity of the coin.
	BlockHeight int64

	// PubKey is the public key the staked output is encumbered by.
	PubKey *secp256k1.PublicKey

	// PrivKey is the private key that signs the proposed block.
	PrivKey *secp256k1.PrivateKey
}

// WalletSource provides the coins the proposer stakes.
//
// The interface contract requires that all of these methods are safe for
// concurrent access.
type WalletSource interface {
	// EligibleCoins returns the stakeable coins that have matured under
	// the provided maturity when building on top of a tip at the provided
	// height.  The returned slice is owned by the caller.
	EligibleCoins(tipHeight int64, stakeMaturity uint16) []*StakeableCoin
}

// BlockAssembler builds the candidate block for a winning kernel.
type BlockAssembler interface {
	// Assemble returns a block extending the provided parent that stakes
	// the provided coin in the given slot, includes the selected
	// transactions, and pays the staked amount plus the reward back to the
	// staking key.  The returned block is complete except for the block
	// signature.
	Assemble(parent *Snapshot, txs []*wire.MsgTx, reward int64, bits uint32,
		coin *StakeableCoin, slotTime time.Time) (*wire.MsgBlock, error)
}

// Logic finalizes candidate blocks.  It re-checks the rules the assembled
// block must satisfy and attaches the block signature.
type Logic interface {
	// FinalizeAndValidate validates the assembled block against the
	// parent it claims to extend and the coin it stakes, signs the block
	// hash with the staking key, and returns the finished block.
	FinalizeAndValidate(block *wire.MsgBlock, parent *Snapshot,
		coin *StakeableCoin) (*wire.MsgBlock, error)
}
