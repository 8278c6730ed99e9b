// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"sync"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/wire"
)

// testPrivKey returns a deterministic private key for use in the tests.
func testPrivKey() *secp256k1.PrivateKey {
	var keyBytes [32]byte
	for i := range keyBytes {
		keyBytes[i] = byte(i + 1)
	}
	return secp256k1.PrivKeyFromBytes(keyBytes[:])
}

// newTestCoin returns a stakeable coin confirmed at the provided height with
// the provided amount.  The index distinguishes several coins from each
// other, and the key material is deterministic.
func newTestCoin(confirmHeight, amount int64, index uint32) *StakeableCoin {
	priv := testPrivKey()
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = byte(i)
	}
	return &StakeableCoin{
		OutPoint:    wire.OutPoint{Hash: hash, Index: index},
		Amount:      amount,
		BlockHeight: confirmHeight,
		PubKey:      priv.PubKey(),
		PrivKey:     priv,
	}
}

// genesisSnapshot returns a snapshot of the genesis block of the provided
// network.
func genesisSnapshot(params *chaincfg.Params) *Snapshot {
	return &Snapshot{
		Hash:   params.GenesisHash,
		Height: 0,
		Header: params.GenesisBlock.Header,
	}
}

// fakeChain provides an ActiveChain backed by an in-memory header slice.  It
// also satisfies chaincfg.ChainAccess, so the difficulty policy of the
// network under test reads the same headers the proposer builds on.
//
// The optional beforeSnapshot hook runs before every BestSnapshot call and
// lets a test move the tip at a precise point within a proposal attempt.
type fakeChain struct {
	mtx            sync.Mutex
	headers        []wire.BlockHeader
	beforeSnapshot func(c *fakeChain)
}

// newFakeChain returns a chain with the provided header as its only block.
func newFakeChain(tip *wire.BlockHeader) *fakeChain {
	return &fakeChain{headers: []wire.BlockHeader{*tip}}
}

// BestSnapshot returns the current tip of the fake chain.
func (c *fakeChain) BestSnapshot() *Snapshot {
	c.mtx.Lock()
	hook := c.beforeSnapshot
	c.mtx.Unlock()
	if hook != nil {
		hook(c)
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	tip := c.headers[len(c.headers)-1]
	return &Snapshot{
		Hash:   tip.BlockHash(),
		Height: int64(tip.Height),
		Header: tip,
	}
}

// AtDepth returns the header at the provided depth below the tip of the fake
// chain.
func (c *fakeChain) AtDepth(depth int64) *wire.BlockHeader {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	idx := int64(len(c.headers)) - depth
	if depth < 1 || idx < 0 {
		return nil
	}
	header := c.headers[idx]
	return &header
}

// extend appends the provided header to the fake chain, making it the new
// tip.
func (c *fakeChain) extend(header *wire.BlockHeader) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.headers = append(c.headers, *header)
}

// fakeWallet provides a WalletSource over a fixed set of coins.
type fakeWallet struct {
	mtx   sync.Mutex
	coins []*StakeableCoin
}

// EligibleCoins returns the coins of the fake wallet that have matured under
// the provided maturity at the provided tip height.
func (w *fakeWallet) EligibleCoins(tipHeight int64, stakeMaturity uint16) []*StakeableCoin {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	eligible := make([]*StakeableCoin, 0, len(w.coins))
	for _, coin := range w.coins {
		if staking.IsStakeable(coin.BlockHeight, tipHeight, stakeMaturity) {
			eligible = append(eligible, coin)
		}
	}
	return eligible
}

// fakeTxSelector provides a TxSelector that returns a fixed set of
// transactions regardless of the limits.
type fakeTxSelector struct {
	txs []*wire.MsgTx
}

// SelectCandidates returns the fixed transactions of the fake selector.
func (s *fakeTxSelector) SelectCandidates(limits SelectionLimits) []*wire.MsgTx {
	return s.txs
}

// fakePublisher provides a BlockPublisher that records every broadcast block
// on a channel.  Setting err forces every broadcast to fail with it.
type fakePublisher struct {
	blocks chan *wire.MsgBlock
	err    error
}

// newFakePublisher returns a publisher with room to record several blocks
// without blocking the proposal goroutine.
func newFakePublisher() *fakePublisher {
	return &fakePublisher{blocks: make(chan *wire.MsgBlock, 16)}
}

// Broadcast records the provided block or fails with the forced error.
func (p *fakePublisher) Broadcast(block *wire.MsgBlock) error {
	if p.err != nil {
		return p.err
	}
	p.blocks <- block
	return nil
}
