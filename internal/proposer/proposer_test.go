// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"errors"
	"testing"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/uteutil"
	"github.com/unite-org/united/wire"
)

// newTestProposer returns a proposer over the provided collaborators with
// the default assembler and finalization logic.
func newTestProposer(params *chaincfg.Params, chain ActiveChain, wallet WalletSource, publisher BlockPublisher) *Proposer {
	return New(&Config{
		ChainParams: params,
		Chain:       chain,
		Wallet:      wallet,
		TxSource:    &fakeTxSelector{},
		Publisher:   publisher,
	})
}

// TestProposerLifecycle ensures Start and Stop transition the proposer
// between its running states, tolerate being called redundantly, and allow
// the proposer to be restarted.
func TestProposerLifecycle(t *testing.T) {
	params := chaincfg.RegNetParams()
	chain := newFakeChain(&params.GenesisBlock.Header)
	p := newTestProposer(params, chain, &fakeWallet{}, newFakePublisher())

	if p.IsStarted() {
		t.Fatal("proposer reports started before Start")
	}
	p.Start()
	if !p.IsStarted() {
		t.Fatal("proposer reports stopped after Start")
	}

	// Redundant starts and stops must not panic or hang.
	p.Start()
	if !p.IsStarted() {
		t.Fatal("proposer reports stopped after redundant Start")
	}
	p.Stop()
	if p.IsStarted() {
		t.Fatal("proposer reports started after Stop")
	}
	p.Stop()

	// The proposer must come back up after a stop.
	p.Start()
	if !p.IsStarted() {
		t.Fatal("proposer reports stopped after restart")
	}
	p.Stop()
}

// TestProposeNoCoins ensures a proposal attempt without any stakeable coins
// passes silently without publishing a block.
func TestProposeNoCoins(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	chain := newFakeChain(&params.GenesisBlock.Header)
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, &fakeWallet{}, publisher)

	if err := p.propose(make(chan struct{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case block := <-publisher.blocks:
		t.Fatalf("block %v published without stakeable coins",
			block.BlockHash())
	default:
	}
}

// TestProposeNoWinner ensures a proposal attempt where no coin satisfies the
// stake target passes silently without publishing a block.
func TestProposeNoWinner(t *testing.T) {
	t.Parallel()

	// A zero difficulty target is unsatisfiable, so every kernel loses.
	params := chaincfg.RegNetParams()
	tip := params.GenesisBlock.Header
	tip.Bits = 0
	chain := newFakeChain(&tip)
	wallet := &fakeWallet{coins: []*StakeableCoin{
		newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0),
	}}
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, wallet, publisher)

	if err := p.propose(make(chan struct{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case block := <-publisher.blocks:
		t.Fatalf("block %v published without a winning kernel",
			block.BlockHash())
	default:
	}
}

// TestProposeAndPublish ensures a proposal attempt with a winning coin
// publishes a signed block extending the tip and records it as recently
// proposed.
func TestProposeAndPublish(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	chain := newFakeChain(&params.GenesisBlock.Header)
	coin := newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0)
	wallet := &fakeWallet{coins: []*StakeableCoin{coin}}
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, wallet, publisher)

	if err := p.propose(make(chan struct{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var block *wire.MsgBlock
	select {
	case block = <-publisher.blocks:
	default:
		t.Fatal("no block was published")
	}

	header := &block.Header
	if header.PrevBlock != params.GenesisHash {
		t.Errorf("unexpected prev block -- got %v, want %v",
			header.PrevBlock, params.GenesisHash)
	}
	if header.Height != 1 {
		t.Errorf("unexpected height -- got %d, want 1", header.Height)
	}
	if !staking.IsSlotTimestamp(header.Timestamp,
		params.StakeTimestampInterval) {

		t.Errorf("timestamp %d is off the slot grid", header.Timestamp.Unix())
	}
	if !header.Timestamp.After(params.GenesisBlock.Header.Timestamp) {
		t.Errorf("timestamp %d does not follow the parent",
			header.Timestamp.Unix())
	}
	if !VerifyBlockSignature(block, coin.PubKey) {
		t.Error("published block signature does not verify")
	}

	// The stakebase payout must return the staked amount plus the reward.
	wantPayout := coin.Amount + params.RewardFunction(params, 1)
	if got := block.Transactions[0].TxOut[0].Value; got != wantPayout {
		t.Errorf("unexpected payout -- got %d, want %d", got, wantPayout)
	}

	// The block must be tracked as recently proposed.
	blockHash := block.BlockHash()
	if !p.RecentlyProposed(&blockHash) {
		t.Error("published block not tracked as recently proposed")
	}
	otherHash := chainhash.Hash{0x0f}
	if p.RecentlyProposed(&otherHash) {
		t.Error("unknown block tracked as recently proposed")
	}
}

// TestProposeStaleTip ensures a proposal attempt discards its block when the
// chain tip moves while the block is being built, and that the following
// attempt extends the new tip.
func TestProposeStaleTip(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	genesisHeader := params.GenesisBlock.Header
	chain := newFakeChain(&genesisHeader)
	wallet := &fakeWallet{coins: []*StakeableCoin{
		newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0),
	}}
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, wallet, publisher)
	quit := make(chan struct{})

	// A competing block that arrives mid-attempt.
	next := genesisHeader
	next.PrevBlock = params.GenesisHash
	next.Height = 1
	next.Timestamp = genesisHeader.Timestamp.Add(params.StakeTimestampInterval)
	next.StakeModifier = chainhash.Hash{0x02}

	// Extend the chain between the snapshot the attempt builds on and the
	// re-check before publishing.
	snapCalls := 0
	chain.beforeSnapshot = func(c *fakeChain) {
		snapCalls++
		if snapCalls == 2 {
			c.extend(&next)
		}
	}

	err := p.propose(quit)
	if !errors.Is(err, ErrStaleTip) {
		t.Fatalf("unexpected error -- got %v, want %v", err, ErrStaleTip)
	}
	select {
	case block := <-publisher.blocks:
		t.Fatalf("stale block %v was published", block.BlockHash())
	default:
	}

	// The next attempt builds on the new tip.
	chain.beforeSnapshot = nil
	if err := p.propose(quit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case block := <-publisher.blocks:
		if block.Header.PrevBlock != next.BlockHash() {
			t.Errorf("unexpected prev block -- got %v, want %v",
				block.Header.PrevBlock, next.BlockHash())
		}
		if block.Header.Height != 2 {
			t.Errorf("unexpected height -- got %d, want 2",
				block.Header.Height)
		}
	default:
		t.Fatal("no block was published on the new tip")
	}
}

// TestProposeRetriesAfterStaleTip ensures a proposal trigger restarts after
// the tip moves mid-attempt and publishes a block on the new tip within the
// same trigger.
func TestProposeRetriesAfterStaleTip(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	genesisHeader := params.GenesisBlock.Header
	chain := newFakeChain(&genesisHeader)
	wallet := &fakeWallet{coins: []*StakeableCoin{
		newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0),
	}}
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, wallet, publisher)

	next := genesisHeader
	next.PrevBlock = params.GenesisHash
	next.Height = 1
	next.Timestamp = genesisHeader.Timestamp.Add(params.StakeTimestampInterval)
	next.StakeModifier = chainhash.Hash{0x03}

	snapCalls := 0
	chain.beforeSnapshot = func(c *fakeChain) {
		snapCalls++
		if snapCalls == 2 {
			c.extend(&next)
		}
	}

	p.proposeWithRetries(make(chan struct{}))

	select {
	case block := <-publisher.blocks:
		if block.Header.PrevBlock != next.BlockHash() {
			t.Errorf("unexpected prev block -- got %v, want %v",
				block.Header.PrevBlock, next.BlockHash())
		}
	default:
		t.Fatal("no block was published after the stale tip restart")
	}
}

// TestProposePublishError ensures a rejected broadcast surfaces as an error
// and the block is not tracked as recently proposed.
func TestProposePublishError(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	chain := newFakeChain(&params.GenesisBlock.Header)
	wallet := &fakeWallet{coins: []*StakeableCoin{
		newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0),
	}}
	publisher := newFakePublisher()
	wantErr := errors.New("block rejected")
	publisher.err = wantErr
	p := newTestProposer(params, chain, wallet, publisher)

	err := p.propose(make(chan struct{}))
	if !errors.Is(err, wantErr) {
		t.Fatalf("unexpected error -- got %v, want %v", err, wantErr)
	}
}

// TestWakeProposes ensures a wake nudge triggers a proposal without waiting
// for the slot ticker and that a stopped proposer ignores nudges.
func TestWakeProposes(t *testing.T) {
	params := chaincfg.RegNetParams()
	chain := newFakeChain(&params.GenesisBlock.Header)
	wallet := &fakeWallet{coins: []*StakeableCoin{
		newTestCoin(0, 750000000*uteutil.AtomsPerCoin, 0),
	}}
	publisher := newFakePublisher()
	p := newTestProposer(params, chain, wallet, publisher)

	p.Start()
	defer p.Stop()

	p.Wake()
	select {
	case block := <-publisher.blocks:
		if block.Header.PrevBlock != params.GenesisHash {
			t.Errorf("unexpected prev block -- got %v, want %v",
				block.Header.PrevBlock, params.GenesisHash)
		}
	case <-time.After(time.Second * 10):
		t.Fatal("timeout waiting for proposed block")
	}

	p.Stop()
	if p.IsStarted() {
		t.Fatal("proposer reports started after Stop")
	}

	// Drop anything published while the proposer was still running, then
	// ensure a nudge after the stop publishes nothing.  No goroutine is
	// left to act on it, so this is deterministic.
	for drained := false; !drained; {
		select {
		case <-publisher.blocks:
		default:
			drained = true
		}
	}
	p.Wake()
	select {
	case block := <-publisher.blocks:
		t.Fatalf("block %v published after Stop", block.BlockHash())
	default:
	}
}
