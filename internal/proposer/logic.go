// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"fmt"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/unite-org/united/chaincfg"
	"github.com/unite-org/united/internal/staking"
	"github.com/unite-org/united/wire"
)

// proposalLogic is the Logic used when the configuration does not provide
// one.
type proposalLogic struct {
	chainParams *chaincfg.Params
}

// NewLogic returns the default finalization logic for the provided network.
func NewLogic(chainParams *chaincfg.Params) Logic {
	return &proposalLogic{chainParams: chainParams}
}

// FinalizeAndValidate checks that the assembled block extends the parent on
// the slot grid with a winning, mature kernel and, when every check passes,
// signs the block hash with the staking key.  The checks repeat what the
// assembler already guarantees so that a custom assembler cannot produce a
// block this node would not itself accept.
func (l *proposalLogic) FinalizeAndValidate(block *wire.MsgBlock, parent *Snapshot, coin *StakeableCoin) (*wire.MsgBlock, error) {
	header := &block.Header

	// The block must link to the parent it was assembled against.
	if header.PrevBlock != parent.Hash {
		str := fmt.Sprintf("block extends %v instead of the current tip %v",
			header.PrevBlock, parent.Hash)
		return nil, makeError(ErrStaleTip, str)
	}
	if int64(header.Height) != parent.Height+1 {
		str := fmt.Sprintf("block height %d does not follow parent height %d",
			header.Height, parent.Height)
		return nil, makeError(ErrStaleTip, str)
	}

	// The timestamp must be a slot on the stake timestamp grid, strictly
	// after the parent, and not too far in the future.
	interval := l.chainParams.StakeTimestampInterval
	if !staking.IsSlotTimestamp(header.Timestamp, interval) {
		str := fmt.Sprintf("block timestamp %d is not a multiple of the "+
			"stake timestamp interval", header.Timestamp.Unix())
		return nil, makeError(ErrInvalidTimestamp, str)
	}
	if !header.Timestamp.After(parent.Header.Timestamp) {
		str := fmt.Sprintf("block timestamp %d is not after the parent "+
			"timestamp %d", header.Timestamp.Unix(),
			parent.Header.Timestamp.Unix())
		return nil, makeError(ErrInvalidTimestamp, str)
	}
	futureLimit := time.Now().Add(l.chainParams.MaxFutureBlockTime)
	if header.Timestamp.After(futureLimit) {
		str := fmt.Sprintf("block timestamp %d is too far in the future",
			header.Timestamp.Unix())
		return nil, makeError(ErrInvalidTimestamp, str)
	}

	// The staked coin must have matured.
	if !staking.IsStakeable(coin.BlockHeight, parent.Height,
		l.chainParams.StakeMaturity) {

		str := fmt.Sprintf("coin confirmed at height %d has not matured at "+
			"tip height %d", coin.BlockHeight, parent.Height)
		return nil, makeError(ErrImmatureCoin, str)
	}

	// The coin must actually win the slot the block claims.
	digest := staking.KernelDigest(&parent.Header.StakeModifier,
		&coin.OutPoint, header.Timestamp)
	if !staking.CheckKernel(&digest, header.Bits, coin.Amount) {
		str := fmt.Sprintf("coin %v does not satisfy the stake target for "+
			"slot %d", coin.OutPoint, header.Timestamp.Unix())
		return nil, makeError(ErrKernelMiss, str)
	}

	// The header must carry the modifier derived from the parent and the
	// staked outpoint so the next lottery is seeded correctly.
	want := staking.NextStakeModifier(&parent.Header.StakeModifier,
		&coin.OutPoint)
	if header.StakeModifier != want {
		str := fmt.Sprintf("block stake modifier %v does not match derived "+
			"modifier %v", header.StakeModifier, want)
		return nil, makeError(ErrBadStakeModifier, str)
	}

	// The serialized block must fit the network limit with room left for
	// the signature that has not been attached yet.
	maxSize := l.chainParams.MaximumBlockSerializedSize
	size := block.SerializeSize() + wire.MaxBlockSignatureSize
	if size > maxSize {
		str := fmt.Sprintf("block size %d exceeds the maximum allowed "+
			"size %d", size, maxSize)
		return nil, makeError(ErrBlockTooLarge, str)
	}

	// Sign the block hash with the staking key.  The hash commits to the
	// merkle root and therefore to every transaction, so the signature
	// covers the whole block.
	blockHash := block.BlockHash()
	sig, err := schnorr.Sign(coin.PrivKey, blockHash[:])
	if err != nil {
		str := fmt.Sprintf("unable to sign block %v: %v", blockHash, err)
		return nil, makeError(ErrSignFailure, str)
	}
	block.Signature = sig.Serialize()
	return block, nil
}

// VerifyBlockSignature returns whether the signature carried by the block is
// a valid schnorr signature of the block hash by the provided public key.
func VerifyBlockSignature(block *wire.MsgBlock, pubKey *secp256k1.PublicKey) bool {
	sig, err := schnorr.ParseSignature(block.Signature)
	if err != nil {
		return false
	}
	blockHash := block.BlockHash()
	return sig.Verify(blockHash[:], pubKey)
}
