// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"encoding/binary"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/uteutil"
	"github.com/unite-org/united/wire"
)

// generatedBlockVersion is the version of the block being generated by this
// package.
const generatedBlockVersion = 1

// stakebaseScript returns the signature script placed on the null input of a
// stakebase transaction.  It encodes the block height so the transaction
// hash stays unique even when the same coin restakes an identical payout at
// a later height.
func stakebaseScript(height uint32) []byte {
	script := make([]byte, 5)
	script[0] = 0x04 // OP_DATA_4
	binary.LittleEndian.PutUint32(script[1:], height)
	return script
}

// createStakebaseTx returns the coinbase transaction of a proof-of-stake
// block: a null input carrying the height tag, the staked outpoint being
// consumed, and a single output returning the staked amount plus the block
// reward to the staking key.
func createStakebaseTx(params *chaincfg.Params, coin *StakeableCoin, reward int64, height uint32) (*wire.MsgTx, error) {
	pkHash := uteutil.Hash160(coin.PubKey.SerializeCompressed())
	addr, err := uteutil.NewAddressWitnessPubKeyHash(pkHash, params)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx()
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		SignatureScript: stakebaseScript(height),
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxIn(&wire.TxIn{
		// Ownership of the staked output is proven by the block signature,
		// so the input itself carries no script.
		PreviousOutPoint: coin.OutPoint,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(coin.Amount+reward, addr.PaymentScript()))
	return tx, nil
}

// blockAssembler is the BlockAssembler used when the configuration does not
// provide one.
type blockAssembler struct {
	chainParams *chaincfg.Params
}

// NewBlockAssembler returns the default block assembler for the provided
// network.
func NewBlockAssembler(chainParams *chaincfg.Params) BlockAssembler {
	return &blockAssembler{chainParams: chainParams}
}

// Assemble builds a block extending the provided parent that stakes the
// provided coin in the given slot.  The stakebase transaction is placed
// first, followed by the selected transactions, and the header carries the
// stake modifier derived for the staked outpoint.  The block signature is
// left empty for the finalization logic to fill in.
func (a *blockAssembler) Assemble(parent *Snapshot, txs []*wire.MsgTx, reward int64, bits uint32, coin *StakeableCoin, slotTime time.Time) (*wire.MsgBlock, error) {
	nextHeight := uint32(parent.Height + 1)
	stakebaseTx, err := createStakebaseTx(a.chainParams, coin, reward,
		nextHeight)
	if err != nil {
		return nil, err
	}

	leaves := make([]chainhash.Hash, 0, len(txs)+1)
	leaves = append(leaves, stakebaseTx.TxHash())
	for _, tx := range txs {
		leaves = append(leaves, tx.TxHash())
	}

	header := wire.BlockHeader{
		Version:    generatedBlockVersion,
		PrevBlock:  parent.Hash,
		MerkleRoot: standalone.CalcMerkleRoot(leaves),
		Timestamp:  time.Unix(slotTime.Unix(), 0),
		Bits:       bits,
		StakeModifier: staking.NextStakeModifier(&parent.Header.StakeModifier,
			&coin.OutPoint),
		Height: nextHeight,
	}

	block := wire.NewMsgBlock(&header)
	block.AddTransaction(stakebaseTx)
	for _, tx := range txs {
		block.AddTransaction(tx)
	}
	return block, nil
}
