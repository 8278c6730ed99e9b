// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/lru"
	"github.com/decred/dcrd/crypto/rand"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/uteutil"
)

const (
	// maxStaleRetries is the maximum number of times a single proposal
	// trigger restarts after the chain tip moved mid-attempt before the
	// proposer defers to the next slot.
	maxStaleRetries = 3

	// recentProposalsSize is the number of recently proposed block hashes
	// to track.
	recentProposalsSize = 32
)

// Config is a descriptor containing the proposer configuration.
type Config struct {
	// ChainParams identifies the network the proposer produces blocks
	// for.
	ChainParams *chaincfg.Params

	// Chain provides the tip being extended.
	Chain ActiveChain

	// Wallet provides the coins available for staking.
	Wallet WalletSource

	// TxSource provides the transactions to include in proposed blocks.
	TxSource TxSelector

	// Assembler builds candidate blocks for winning kernels.  When nil,
	// the default assembler for ChainParams is used.
	Assembler BlockAssembler

	// Logic validates and signs candidate blocks.  When nil, the default
	// logic for ChainParams is used.
	Logic Logic

	// Publisher receives finished blocks.
	Publisher BlockPublisher
}

// Proposer generates proof-of-stake blocks on a fixed slot schedule in a
// concurrency-safe manner.  It runs a single proposal goroutine between
// Start and Stop that attempts a proposal every stake timestamp interval and
// whenever Wake is called.
type Proposer struct {
	cfg Config

	// These fields track the lifecycle of the proposal goroutine and are
	// protected by the mutex.  The quit channel is remade on every Start
	// so the proposer can be restarted after a Stop.
	mtx     sync.Mutex
	started bool
	quit    chan struct{}
	wg      sync.WaitGroup

	// wake delivers at most one pending proposal nudge to the proposal
	// goroutine.
	wake chan struct{}

	// recentlyProposed tracks the hashes of blocks this proposer recently
	// published.
	recentlyProposed *lru.Set[chainhash.Hash]
}

// New returns a proposer for the provided configuration.  The proposer is
// idle until Start is called.
func New(cfg *Config) *Proposer {
	p := &Proposer{
		cfg:              *cfg,
		wake:             make(chan struct{}, 1),
		recentlyProposed: lru.NewSet[chainhash.Hash](recentProposalsSize),
	}
	if p.cfg.Assembler == nil {
		p.cfg.Assembler = NewBlockAssembler(cfg.ChainParams)
	}
	if p.cfg.Logic == nil {
		p.cfg.Logic = NewLogic(cfg.ChainParams)
	}
	return p
}

// Start launches the proposal goroutine.  It has no effect when the proposer
// is already running.
//
// This function is safe for concurrent access.
func (p *Proposer) Start() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.started {
		return
	}

	// Drop any nudge left over from a previous run so waking a stopped
	// proposer never carries over into the next one.
	select {
	case <-p.wake:
	default:
	}

	p.quit = make(chan struct{})
	p.wg.Add(1)
	go p.proposalLoop(p.quit)
	p.started = true

	log.Infof("Block proposer started (network %s, interval %s)",
		p.cfg.ChainParams.Name, p.cfg.ChainParams.StakeTimestampInterval)
}

// Stop synchronously stops the proposal goroutine.  Once Stop returns, no
// further block can be published until Start is called again.  It has no
// effect when the proposer is not running.
//
// This function is safe for concurrent access.
func (p *Proposer) Stop() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.started {
		return
	}

	close(p.quit)
	p.wg.Wait()
	p.started = false

	log.Info("Block proposer stopped")
}

// IsStarted returns whether the proposal goroutine is currently running.
//
// This function is safe for concurrent access.
func (p *Proposer) IsStarted() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.started
}

// Wake nudges the proposer to attempt a proposal immediately instead of
// waiting for the next slot tick.  It never blocks.  Multiple nudges while
// an attempt is already pending coalesce into one, and waking a stopped
// proposer has no effect.
//
// This function is safe for concurrent access.
func (p *Proposer) Wake() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.started {
		return
	}
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// RecentlyProposed returns whether a block with the provided hash was
// recently published by this proposer.
//
// This function is safe for concurrent access.
func (p *Proposer) RecentlyProposed(hash *chainhash.Hash) bool {
	return p.recentlyProposed.Contains(*hash)
}

// proposalLoop attempts a proposal once per stake timestamp interval and
// whenever a wake nudge arrives, until the quit channel is closed.
//
// It must be run as a goroutine.
func (p *Proposer) proposalLoop(quit chan struct{}) {
	defer p.wg.Done()

	log.Trace("Proposal loop started")
	ticker := time.NewTicker(p.cfg.ChainParams.StakeTimestampInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			log.Trace("Proposal loop done")
			return
		case <-ticker.C:
		case <-p.wake:
		}

		p.proposeWithRetries(quit)
	}
}

// proposeWithRetries runs a proposal attempt for a single trigger,
// restarting immediately when the chain tip moves mid-attempt.  After
// maxStaleRetries restarts it gives up until the next trigger.  Any other
// failure is logged and deferred.
func (p *Proposer) proposeWithRetries(quit chan struct{}) {
	for attempt := 0; attempt <= maxStaleRetries; attempt++ {
		err := p.propose(quit)
		if err == nil {
			return
		}
		if errors.Is(err, ErrStaleTip) {
			log.Debugf("Chain tip moved during proposal attempt: %v", err)
			continue
		}

		log.Errorf("Proposal attempt failed: %v", err)
		return
	}

	log.Debugf("Deferring proposal to the next slot after %d stale tip "+
		"retries", maxStaleRetries)
}

// propose runs a single proposal cycle against the current chain tip.  A
// slot without stakeable coins or without a winning kernel is not an error,
// it simply produces no block.
func (p *Proposer) propose(quit chan struct{}) error {
	parent := p.cfg.Chain.BestSnapshot()
	nextHeight := parent.Height + 1

	// Gather the coins that are allowed to stake on the current tip and
	// shuffle them so the same coin does not soak up every winning slot
	// evaluation when several coins qualify.
	coins := p.cfg.Wallet.EligibleCoins(parent.Height,
		p.cfg.ChainParams.StakeMaturity)
	if len(coins) == 0 {
		log.Tracef("No stakeable coins at height %d", parent.Height)
		return nil
	}
	rand.Shuffle(len(coins), func(i, j int) {
		coins[i], coins[j] = coins[j], coins[i]
	})

	// Determine the slot being contested along with the difficulty and
	// reward of the block that would fill it.
	slotTime := staking.SlotTimestamp(time.Now(), parent.Header.Timestamp,
		p.cfg.ChainParams.StakeTimestampInterval)
	bits, err := p.cfg.ChainParams.DifficultyFunction(p.cfg.ChainParams,
		nextHeight, p.cfg.Chain)
	if err != nil {
		return err
	}
	reward := p.cfg.ChainParams.RewardFunction(p.cfg.ChainParams, nextHeight)

	// Evaluate each coin's kernel for the slot until one wins.
	var winner *StakeableCoin
	for _, coin := range coins {
		digest := staking.KernelDigest(&parent.Header.StakeModifier,
			&coin.OutPoint, slotTime)
		if staking.CheckKernel(&digest, bits, coin.Amount) {
			winner = coin
			break
		}
	}
	if winner == nil {
		log.Tracef("No winning kernel among %d coins for slot %d",
			len(coins), slotTime.Unix())
		return nil
	}

	// Fill the block with transactions and hand it to the finalization
	// logic for validation and the block signature.
	txs := p.cfg.TxSource.SelectCandidates(SelectionLimits{
		MaxSize:       p.cfg.ChainParams.MaximumBlockSize,
		MaxWeight:     p.cfg.ChainParams.MaximumBlockWeight,
		MaxSigOpsCost: p.cfg.ChainParams.MaximumBlockSigOpsCost,
	})
	block, err := p.cfg.Assembler.Assemble(parent, txs, reward, bits, winner,
		slotTime)
	if err != nil {
		return err
	}
	block, err = p.cfg.Logic.FinalizeAndValidate(block, parent, winner)
	if err != nil {
		return err
	}

	// Discard the block when another one extended the chain while this
	// one was being built.
	if best := p.cfg.Chain.BestSnapshot(); best.Hash != parent.Hash {
		str := fmt.Sprintf("chain tip moved from %v to %v during proposal",
			parent.Hash, best.Hash)
		return makeError(ErrStaleTip, str)
	}

	// Never publish after a shutdown was requested.
	select {
	case <-quit:
		return nil
	default:
	}

	blockHash := block.BlockHash()
	if err := p.cfg.Publisher.Broadcast(block); err != nil {
		return fmt.Errorf("unable to publish block %v: %w", blockHash, err)
	}
	p.recentlyProposed.Put(blockHash)

	log.Infof("Proposed block %v (height %d, slot %d, staked %v, %d "+
		"transactions)", blockHash, block.Header.Height, slotTime.Unix(),
		uteutil.Amount(winner.Amount), len(block.Transactions))
	return nil
}
