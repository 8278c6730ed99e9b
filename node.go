// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/jrick/bitset"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/progresslog"
	"github.com/unite-org/united/internal/proposer"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/uteutil"
	"github.com/unite-org/united/wire"
)

// Errors returned from processing a block that violates one of the acceptance
// rules of the in-memory chain.  They can all be tested with errors.Is.
var (
	// errDuplicateBlock indicates a block the chain already contains.
	errDuplicateBlock = errors.New("duplicate block")

	// errOrphanBlock indicates a block that does not connect to the
	// current tip of the chain.
	errOrphanBlock = errors.New("block does not extend the current tip")

	// errBadBlockHeight indicates the height encoded in the header does
	// not match the height the block connects at.
	errBadBlockHeight = errors.New("bad block height")

	// errInvalidTimestamp indicates the header timestamp is off the stake
	// timestamp grid, not after the parent, or too far in the future.
	errInvalidTimestamp = errors.New("invalid block timestamp")

	// errBlockTooBig indicates the serialized block exceeds the maximum
	// allowed size.
	errBlockTooBig = errors.New("block exceeds the maximum serialized size")

	// errBadSignature indicates the block signature exceeds the maximum
	// allowed size.
	errBadSignature = errors.New("bad block signature size")

	// errBadMerkleRoot indicates the header commitment does not match the
	// transactions in the block.
	errBadMerkleRoot = errors.New("bad merkle root")

	// errBadDifficulty indicates the header difficulty bits do not match
	// the required difficulty for the block.
	errBadDifficulty = errors.New("bad difficulty bits")

	// errBadStakebase indicates the first transaction of the block does
	// not have the required stakebase structure.
	errBadStakebase = errors.New("bad stakebase transaction")

	// errBadStakeModifier indicates the header stake modifier was not
	// derived from the parent modifier and the staked outpoint.
	errBadStakeModifier = errors.New("bad stake modifier")
)

// isNullOutPoint returns whether the provided outpoint is the null outpoint
// that marks the first input of a stakebase transaction.
func isNullOutPoint(op *wire.OutPoint) bool {
	return op.Index == wire.MaxPrevOutIndex && op.Hash == (chainhash.Hash{})
}

// memChain is a genesis-rooted header chain kept fully in memory.  It is the
// in-process stand-in for the consensus processing of a full node and serves
// both the chain access the proposer needs and the chain access the
// consensus policy functions need.
type memChain struct {
	mtx         sync.RWMutex
	chainParams *chaincfg.Params
	headers     []wire.BlockHeader
	index       map[chainhash.Hash]int64
}

// newMemChain returns a chain for the provided network containing only its
// genesis block.
func newMemChain(chainParams *chaincfg.Params) *memChain {
	return &memChain{
		chainParams: chainParams,
		headers:     []wire.BlockHeader{chainParams.GenesisBlock.Header},
		index:       map[chainhash.Hash]int64{chainParams.GenesisHash: 0},
	}
}

// atDepth returns the header at the given depth below the tip without
// acquiring the chain lock.  It must only be called with the lock held.
func (c *memChain) atDepth(depth int64) *wire.BlockHeader {
	idx := int64(len(c.headers)) - depth
	if depth < 1 || idx < 0 {
		return nil
	}
	header := c.headers[idx]
	return &header
}

// AtDepth returns the header of the block at the given depth below the tip,
// where depth 1 is the tip itself.  It returns nil when no block exists at
// that depth.
//
// This function is safe for concurrent access.
func (c *memChain) AtDepth(depth int64) *wire.BlockHeader {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.atDepth(depth)
}

// BestSnapshot returns the current tip of the chain.
//
// This function is safe for concurrent access.
func (c *memChain) BestSnapshot() *proposer.Snapshot {
	c.mtx.RLock()
	tip := c.headers[len(c.headers)-1]
	c.mtx.RUnlock()

	return &proposer.Snapshot{
		Hash:   tip.BlockHash(),
		Height: int64(tip.Height),
		Header: tip,
	}
}

// lockedChainView exposes the chain to the consensus policy functions while
// the chain lock is already held by the caller.
type lockedChainView struct {
	c *memChain
}

// AtDepth returns the header at the given depth below the tip.
func (v lockedChainView) AtDepth(depth int64) *wire.BlockHeader {
	return v.c.atDepth(depth)
}

// checkBlockContext performs the contextual acceptance checks on a block
// that claims to extend the provided parent.  It must be called with the
// chain lock held for writes so the tip cannot move during the checks.
func (c *memChain) checkBlockContext(block *wire.MsgBlock, parent *wire.BlockHeader) error {
	header := &block.Header

	// The block must connect at the next height.
	if header.Height != parent.Height+1 {
		return errBadBlockHeight
	}

	// The timestamp must fall on the stake timestamp grid, come strictly
	// after the parent, and not be too far in the future.
	params := c.chainParams
	if !staking.IsSlotTimestamp(header.Timestamp, params.StakeTimestampInterval) {
		return errInvalidTimestamp
	}
	if !header.Timestamp.After(parent.Timestamp) {
		return errInvalidTimestamp
	}
	maxTimestamp := time.Now().Add(params.MaxFutureBlockTime)
	if header.Timestamp.After(maxTimestamp) {
		return errInvalidTimestamp
	}

	// Enforce the serialized size limits.
	if block.SerializeSize() > params.MaximumBlockSerializedSize {
		return errBlockTooBig
	}
	if len(block.Signature) > wire.MaxBlockSignatureSize {
		return errBadSignature
	}

	// The merkle root must commit to the transactions in the block.
	wantMerkle := standalone.CalcMerkleRoot(block.TxHashes())
	if header.MerkleRoot != wantMerkle {
		return errBadMerkleRoot
	}

	// The difficulty bits must match the required difficulty as computed
	// by the policy of the active network against the parent.
	wantBits, err := params.DifficultyFunction(params, int64(header.Height),
		lockedChainView{c: c})
	if err != nil {
		return err
	}
	if header.Bits != wantBits {
		return errBadDifficulty
	}

	// The first transaction must have the stakebase structure: a null
	// first input carrying the height tag, a real second input naming the
	// staked output, and a payout.
	if len(block.Transactions) == 0 {
		return errBadStakebase
	}
	stakebase := block.Transactions[0]
	if len(stakebase.TxIn) != 2 || len(stakebase.TxOut) == 0 {
		return errBadStakebase
	}
	if !isNullOutPoint(&stakebase.TxIn[0].PreviousOutPoint) {
		return errBadStakebase
	}
	stakedOut := &stakebase.TxIn[1].PreviousOutPoint
	if isNullOutPoint(stakedOut) {
		return errBadStakebase
	}

	// The stake modifier must chain from the parent modifier and the
	// staked outpoint.
	wantModifier := staking.NextStakeModifier(&parent.StakeModifier, stakedOut)
	if header.StakeModifier != wantModifier {
		return errBadStakeModifier
	}

	return nil
}

// connectBlock validates the provided block in the context of the current
// tip and extends the chain with it.  The height the block connected at is
// returned.
//
// This function is safe for concurrent access.
func (c *memChain) connectBlock(block *wire.MsgBlock) (int64, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	blockHash := block.BlockHash()
	if _, exists := c.index[blockHash]; exists {
		return 0, errDuplicateBlock
	}

	// Extending anything but the current tip is not supported, so
	// everything else is treated as an orphan.
	tip := &c.headers[len(c.headers)-1]
	if block.Header.PrevBlock != tip.BlockHash() {
		return 0, errOrphanBlock
	}

	if err := c.checkBlockContext(block, tip); err != nil {
		return 0, err
	}

	height := int64(block.Header.Height)
	c.headers = append(c.headers, block.Header)
	c.index[blockHash] = height
	return height, nil
}

// walletKeySeed is the private key material of the built-in wallet.  The key
// is deliberately fixed so the premine outputs of a freshly created network
// can be staked by every node running this wallet, which is what makes the
// regression test network usable without any provisioning.
var walletKeySeed = []byte{
	0x7c, 0x61, 0x08, 0xd2, 0x49, 0xdc, 0xbb, 0x45,
	0x8c, 0x12, 0xf7, 0x3a, 0x90, 0x5e, 0x24, 0x81,
	0x1f, 0xe0, 0x6b, 0x57, 0xc8, 0x33, 0xaa, 0x0e,
	0x94, 0x4d, 0x02, 0xbf, 0x76, 0x19, 0xe5, 0x38,
}

// walletCoin is a single unspent output the wallet is able to stake.
type walletCoin struct {
	outPoint    wire.OutPoint
	amount      int64
	blockHeight int64
}

// memWallet is a deterministic in-memory wallet.  It controls a single fixed
// key, adopts the premine outputs of the genesis block it is created with,
// and follows the stakebase payouts of accepted blocks.  It is the
// in-process stand-in for an external wallet providing stakeable coins.
type memWallet struct {
	mtx     sync.Mutex
	privKey *secp256k1.PrivateKey
	pubKey  *secp256k1.PublicKey
	coins   []walletCoin
	spent   bitset.Bytes
}

// newMemWallet returns a wallet for the provided network with the premine
// outputs of its genesis block adopted as stakeable coins.
func newMemWallet(chainParams *chaincfg.Params) *memWallet {
	privKey := secp256k1.PrivKeyFromBytes(walletKeySeed)
	w := &memWallet{
		privKey: privKey,
		pubKey:  privKey.PubKey(),
	}

	premineTx := chainParams.GenesisBlock.Transactions[0]
	premineTxHash := premineTx.TxHash()
	for i, out := range premineTx.TxOut {
		op := wire.OutPoint{Hash: premineTxHash, Index: uint32(i)}
		w.addCoin(op, out.Value, 0)
	}
	return w
}

// addCoin appends a coin to the wallet and widens the spent set to cover it.
// It must only be called with the wallet lock held or before the wallet is
// shared.
func (w *memWallet) addCoin(op wire.OutPoint, amount, blockHeight int64) {
	idx := len(w.coins)
	w.coins = append(w.coins, walletCoin{
		outPoint:    op,
		amount:      amount,
		blockHeight: blockHeight,
	})
	if need := idx/8 + 1; len(w.spent) < need {
		w.spent = append(w.spent, make(bitset.Bytes, need-len(w.spent))...)
	}
}

// connectBlock updates the wallet with the effects of a block accepted at
// the provided height.  The output consumed by the stakebase transaction is
// marked spent and the stakebase payout is adopted as a new coin.
func (w *memWallet) connectBlock(block *wire.MsgBlock, height int64) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	stakebase := block.Transactions[0]
	stakedOut := stakebase.TxIn[1].PreviousOutPoint
	for i := range w.coins {
		if w.coins[i].outPoint == stakedOut {
			w.spent.Set(i)
			break
		}
	}

	payout := wire.OutPoint{Hash: stakebase.TxHash(), Index: 0}
	w.addCoin(payout, stakebase.TxOut[0].Value, height)
	wlltLog.Debugf("Staked %v, adopted payout of %v (height %d)", stakedOut,
		uteutil.Amount(stakebase.TxOut[0].Value), height)
}

// EligibleCoins returns the unspent coins of the wallet that have matured
// under the provided maturity when building on a tip at the provided height.
//
// This function is safe for concurrent access.
func (w *memWallet) EligibleCoins(tipHeight int64, stakeMaturity uint16) []*proposer.StakeableCoin {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	coins := make([]*proposer.StakeableCoin, 0, len(w.coins))
	for i := range w.coins {
		if w.spent.Get(i) {
			continue
		}
		coin := &w.coins[i]
		if !staking.IsStakeable(coin.blockHeight, tipHeight, stakeMaturity) {
			continue
		}
		coins = append(coins, &proposer.StakeableCoin{
			OutPoint:    coin.outPoint,
			Amount:      coin.amount,
			BlockHeight: coin.blockHeight,
			PubKey:      w.pubKey,
			PrivKey:     w.privKey,
		})
	}
	return coins
}

// Balance returns the total amount of the unspent coins the wallet tracks.
//
// This function is safe for concurrent access.
func (w *memWallet) Balance() uteutil.Amount {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	var total int64
	for i := range w.coins {
		if !w.spent.Get(i) {
			total += w.coins[i].amount
		}
	}
	return uteutil.Amount(total)
}

// emptyTxSelector is a transaction source with no transactions.  Mempool
// management is outside the node, so blocks carry only the stakebase
// transaction until a real source is wired in.
type emptyTxSelector struct{}

// SelectCandidates returns no transactions.
//
// This function is safe for concurrent access.
func (emptyTxSelector) SelectCandidates(limits proposer.SelectionLimits) []*wire.MsgTx {
	return nil
}

// loopbackPublisher hands proposed blocks straight back to the local node
// for processing.  It stands in for the peer-to-peer relay of a full node.
type loopbackPublisher struct {
	n *node
}

// Broadcast submits the provided block to the local chain.
func (p *loopbackPublisher) Broadcast(block *wire.MsgBlock) error {
	return p.n.ProcessBlock(block)
}

// node ties the in-memory chain, the wallet, and the block proposer together
// for a single network.
type node struct {
	chainParams *chaincfg.Params
	proposing   bool
	chain       *memChain
	wallet      *memWallet
	prop        *proposer.Proposer
	progress    *progresslog.Logger
}

// newNode creates a node for the provided network with its chain, wallet,
// transaction source, and block proposer wired together.
func newNode(chainParams *chaincfg.Params, proposing bool) (*node, error) {
	if chainParams.GenesisBlock == nil {
		return nil, errors.New("network parameters carry no genesis block")
	}

	n := &node{
		chainParams: chainParams,
		proposing:   proposing,
		chain:       newMemChain(chainParams),
		wallet:      newMemWallet(chainParams),
		progress:    progresslog.New("Processed", chanLog),
	}
	n.prop = proposer.New(&proposer.Config{
		ChainParams: chainParams,
		Chain:       n.chain,
		Wallet:      n.wallet,
		TxSource:    emptyTxSelector{},
		Publisher:   &loopbackPublisher{n: n},
	})
	return n, nil
}

// ProcessBlock validates the provided block against the current tip, extends
// the chain with it, and updates the wallet with its effects.
//
// This function is safe for concurrent access.
func (n *node) ProcessBlock(block *wire.MsgBlock) error {
	height, err := n.chain.connectBlock(block)
	if err != nil {
		return err
	}

	chanLog.Debugf("Connected block %v (height %d, %d transactions)",
		block.BlockHash(), height, len(block.Transactions))
	n.wallet.connectBlock(block, height)
	n.progress.LogProgress(block, false)
	return nil
}

// Run starts the services the node is configured with and blocks until the
// provided context is canceled.
func (n *node) Run(ctx context.Context) {
	tip := n.chain.BestSnapshot()
	chanLog.Infof("Chain initialized on %s with genesis block %v",
		n.chainParams.Name, tip.Hash)
	eligible := n.wallet.EligibleCoins(tip.Height, n.chainParams.StakeMaturity)
	wlltLog.Infof("Wallet holds %d stakeable coins (total %v)", len(eligible),
		n.wallet.Balance())

	if n.proposing {
		n.prop.Start()
		defer n.prop.Stop()
	} else {
		untdLog.Info("Block proposal is disabled")
	}

	// Shutdown is driven entirely by the caller's context.
	<-ctx.Done()
}
