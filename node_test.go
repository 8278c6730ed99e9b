// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/proposer"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/uteutil"
	"github.com/unite-org/united/wire"
)

// buildNodeBlock builds, finalizes, and signs a block extending the current
// tip of the provided node, staking the first eligible coin of its wallet.
// The result is exactly what the block proposer would publish for the slot.
func buildNodeBlock(t *testing.T, n *node) *wire.MsgBlock {
	t.Helper()

	params := n.chainParams
	tip := n.chain.BestSnapshot()
	coins := n.wallet.EligibleCoins(tip.Height, params.StakeMaturity)
	if len(coins) == 0 {
		t.Fatalf("no stakeable coins at height %d", tip.Height)
	}
	coin := coins[0]

	slot := staking.SlotTimestamp(time.Now(), tip.Header.Timestamp,
		params.StakeTimestampInterval)
	bits, err := params.DifficultyFunction(params, tip.Height+1, n.chain)
	if err != nil {
		t.Fatalf("unexpected difficulty error: %v", err)
	}
	reward := params.RewardFunction(params, tip.Height+1)

	block, err := proposer.NewBlockAssembler(params).Assemble(tip, nil, reward,
		bits, coin, slot)
	if err != nil {
		t.Fatalf("unexpected assembly error: %v", err)
	}
	block, err = proposer.NewLogic(params).FinalizeAndValidate(block, tip, coin)
	if err != nil {
		t.Fatalf("unexpected finalization error: %v", err)
	}
	return block
}

// TestNodeProcessBlock ensures processing valid blocks extends the chain,
// feeds the stakebase payouts back to the wallet, and keeps a rolling set of
// mature coins available so the chain never stalls.
func TestNodeProcessBlock(t *testing.T) {
	params := chaincfg.RegNetParams()
	n, err := newNode(params, false)
	if err != nil {
		t.Fatalf("unexpected error creating node: %v", err)
	}

	// Extend the chain far enough that the premine runs out and a stakebase
	// payout has to mature before the wallet can keep staking.
	const numBlocks = int64(5)
	var blockOne *wire.MsgBlock
	wantBalance := n.wallet.Balance()
	for height := int64(1); height <= numBlocks; height++ {
		block := buildNodeBlock(t, n)
		if height == 1 {
			blockOne = block
		}
		if err := n.ProcessBlock(block); err != nil {
			t.Fatalf("unexpected error processing block at height %d: %v",
				height, err)
		}
		wantBalance += uteutil.Amount(params.RewardFunction(params, height))

		tip := n.chain.BestSnapshot()
		if tip.Height != height {
			t.Fatalf("mismatched tip height -- got %d, want %d", tip.Height,
				height)
		}
		if tip.Hash != block.BlockHash() {
			t.Fatalf("mismatched tip hash -- got %v, want %v", tip.Hash,
				block.BlockHash())
		}
		if !proposer.VerifyBlockSignature(block, n.wallet.pubKey) {
			t.Fatalf("block at height %d does not carry a valid wallet "+
				"signature", height)
		}
	}

	// Processing an already connected block must be rejected.
	if err := n.ProcessBlock(blockOne); !errors.Is(err, errDuplicateBlock) {
		t.Fatalf("mismatched duplicate error -- got %v, want %v", err,
			errDuplicateBlock)
	}

	// Every staked coin was replaced by a payout of the staked amount plus
	// the block reward, so the balance must have grown by the rewards alone.
	if balance := n.wallet.Balance(); balance != wantBalance {
		t.Fatalf("mismatched wallet balance -- got %v, want %v", balance,
			wantBalance)
	}

	// The three premine coins funded the first three blocks and the first
	// two payouts funded the rest, leaving exactly the payout of the third
	// block mature at the current tip.
	eligible := n.wallet.EligibleCoins(numBlocks, params.StakeMaturity)
	if len(eligible) != 1 {
		t.Fatalf("mismatched eligible coins -- got %d, want 1", len(eligible))
	}

	// The chain must serve headers by depth from the tip back to the
	// genesis block and nothing beyond either end.
	tip := n.chain.BestSnapshot()
	if header := n.chain.AtDepth(1); header == nil ||
		header.BlockHash() != tip.Hash {

		t.Fatalf("depth 1 header does not match the tip")
	}
	if header := n.chain.AtDepth(numBlocks + 1); header == nil ||
		header.BlockHash() != params.GenesisHash {

		t.Fatalf("depth %d header does not match the genesis block",
			numBlocks+1)
	}
	if header := n.chain.AtDepth(numBlocks + 2); header != nil {
		t.Fatalf("unexpected header below the genesis block: %v",
			header.BlockHash())
	}
	if header := n.chain.AtDepth(0); header != nil {
		t.Fatalf("unexpected header at depth 0: %v", header.BlockHash())
	}
}

// TestNodeProcessBlockErrors ensures blocks violating the acceptance rules
// are rejected with the expected error and leave the chain untouched.
func TestNodeProcessBlockErrors(t *testing.T) {
	params := chaincfg.RegNetParams()

	tests := []struct {
		name   string
		mutate func(block *wire.MsgBlock)
		err    error
	}{{
		name: "block that does not extend the tip",
		mutate: func(block *wire.MsgBlock) {
			block.Header.PrevBlock[0] ^= 0x55
		},
		err: errOrphanBlock,
	}, {
		name: "block with a mismatched height",
		mutate: func(block *wire.MsgBlock) {
			block.Header.Height++
		},
		err: errBadBlockHeight,
	}, {
		name: "block with a timestamp off the slot grid",
		mutate: func(block *wire.MsgBlock) {
			block.Header.Timestamp = block.Header.Timestamp.Add(time.Second)
		},
		err: errInvalidTimestamp,
	}, {
		name: "block with a timestamp not after the parent",
		mutate: func(block *wire.MsgBlock) {
			block.Header.Timestamp = params.GenesisBlock.Header.Timestamp
		},
		err: errInvalidTimestamp,
	}, {
		name: "block with a timestamp too far in the future",
		mutate: func(block *wire.MsgBlock) {
			block.Header.Timestamp = block.Header.Timestamp.Add(
				params.MaxFutureBlockTime + 2*params.StakeTimestampInterval)
		},
		err: errInvalidTimestamp,
	}, {
		name: "block that exceeds the maximum serialized size",
		mutate: func(block *wire.MsgBlock) {
			tx := wire.NewMsgTx()
			tx.AddTxIn(&wire.TxIn{
				PreviousOutPoint: block.Transactions[0].TxIn[1].PreviousOutPoint,
				Sequence:         wire.MaxTxInSequenceNum,
			})
			tx.AddTxOut(wire.NewTxOut(0,
				make([]byte, params.MaximumBlockSerializedSize)))
			block.AddTransaction(tx)
		},
		err: errBlockTooBig,
	}, {
		name: "block with an oversized signature",
		mutate: func(block *wire.MsgBlock) {
			block.Signature = make([]byte, wire.MaxBlockSignatureSize+1)
		},
		err: errBadSignature,
	}, {
		name: "block with a mismatched merkle root",
		mutate: func(block *wire.MsgBlock) {
			block.Header.MerkleRoot[0] ^= 0x55
		},
		err: errBadMerkleRoot,
	}, {
		name: "block with mismatched difficulty bits",
		mutate: func(block *wire.MsgBlock) {
			block.Header.Bits++
		},
		err: errBadDifficulty,
	}, {
		name: "block without the staked input",
		mutate: func(block *wire.MsgBlock) {
			stakebase := block.Transactions[0]
			stakebase.TxIn = stakebase.TxIn[:1]
			block.Header.MerkleRoot = standalone.CalcMerkleRoot(block.TxHashes())
		},
		err: errBadStakebase,
	}, {
		name: "block without the null stakebase input",
		mutate: func(block *wire.MsgBlock) {
			block.Transactions[0].TxIn[0].PreviousOutPoint.Index = 0
			block.Header.MerkleRoot = standalone.CalcMerkleRoot(block.TxHashes())
		},
		err: errBadStakebase,
	}, {
		name: "block with a mismatched stake modifier",
		mutate: func(block *wire.MsgBlock) {
			block.Header.StakeModifier[0] ^= 0x55
		},
		err: errBadStakeModifier,
	}}

	n, err := newNode(params, false)
	if err != nil {
		t.Fatalf("unexpected error creating node: %v", err)
	}
	for _, test := range tests {
		block := buildNodeBlock(t, n)
		test.mutate(block)
		if err := n.ProcessBlock(block); !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name,
				err, test.err)
		}
	}

	// None of the rejected blocks may have moved the tip.
	if tip := n.chain.BestSnapshot(); tip.Height != 0 {
		t.Fatalf("rejected blocks moved the chain tip to height %d",
			tip.Height)
	}
}

// TestNodeProposal runs a proposing node against the loopback publisher and
// ensures the blocks it publishes to itself grow the chain and feed the
// stakebase payouts back to the wallet.
func TestNodeProposal(t *testing.T) {
	params := chaincfg.RegNetParams()
	n, err := newNode(params, true)
	if err != nil {
		t.Fatalf("unexpected error creating node: %v", err)
	}
	startBalance := n.wallet.Balance()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		n.Run(ctx)
	}()

	// Nudge the proposer until the chain has grown well past the genesis
	// block instead of waiting out the slot ticker.
	const wantHeight = int64(3)
	deadline := time.Now().Add(30 * time.Second)
	for n.chain.BestSnapshot().Height < wantHeight {
		if time.Now().After(deadline) {
			cancel()
			wg.Wait()
			t.Fatalf("chain stuck at height %d before the deadline",
				n.chain.BestSnapshot().Height)
		}
		n.prop.Wake()
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	wg.Wait()

	if n.prop.IsStarted() {
		t.Fatal("proposer still running after the node shut down")
	}

	tip := n.chain.BestSnapshot()
	if tip.Height < wantHeight {
		t.Fatalf("mismatched tip height -- got %d, want at least %d",
			tip.Height, wantHeight)
	}
	if !n.prop.RecentlyProposed(&tip.Hash) {
		t.Fatalf("tip block %v was not produced by the local proposer",
			tip.Hash)
	}

	wantBalance := startBalance
	for height := int64(1); height <= tip.Height; height++ {
		wantBalance += uteutil.Amount(params.RewardFunction(params, height))
	}
	if balance := n.wallet.Balance(); balance != wantBalance {
		t.Fatalf("mismatched wallet balance -- got %v, want %v", balance,
			wantBalance)
	}
}
