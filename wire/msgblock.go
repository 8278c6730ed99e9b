// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

const (
	// MaxBlockPayload is the maximum bytes a block message can be in bytes.
	MaxBlockPayload = 4000000

	// MaxBlockSignatureSize is the maximum number of bytes the proposer
	// signature trailing a block can be.  Schnorr signatures are 64 bytes;
	// the allowance leaves room for an encoding change without a wire
	// format break.
	MaxBlockSignatureSize = 80

	// maxTxPerBlock is the maximum number of transactions that could
	// possibly fit into a block.
	maxTxPerBlock = (MaxBlockPayload / minTxPayload) + 1
)

// MsgBlock represents a unit-e block message.  A block is made up of the
// header, the list of transactions, and the proposer signature over the block
// hash which proves the block was finalized by the holder of the staked coin
// referenced by the coinbase transaction.  The genesis block of each network
// carries an empty signature.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	Signature    []byte
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

// Deserialize decodes a block from r into the receiver using a format that is
// suitable for long-term storage such as a database.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	const op = "MsgBlock.Deserialize"

	err := readBlockHeader(r, 0, &msg.Header)
	if err != nil {
		return err
	}

	txCount, err := ReadVarInt(r, 0)
	if err != nil {
		return err
	}

	// Prevent more transactions than could possibly fit into a block.  It
	// would be possible to cause memory exhaustion and panics without a
	// sane upper bound on this count.
	if txCount > maxTxPerBlock {
		str := fmt.Sprintf("too many transactions to fit into a block "+
			"[count %d, max %d]", txCount, maxTxPerBlock)
		return messageError(op, ErrTooManyTxs, str)
	}

	msg.Transactions = make([]*MsgTx, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx := MsgTx{}
		err := tx.Deserialize(r)
		if err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	msg.Signature, err = ReadVarBytes(r, 0, MaxBlockSignatureSize,
		"block signature")
	return err
}

// Serialize encodes the block to w using a format that is suitable for
// long-term storage such as a database.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	const op = "MsgBlock.Serialize"

	err := writeBlockHeader(w, 0, &msg.Header)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, 0, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}

	for _, tx := range msg.Transactions {
		err = tx.Serialize(w)
		if err != nil {
			return err
		}
	}

	if len(msg.Signature) > MaxBlockSignatureSize {
		str := fmt.Sprintf("block signature too long [len %d, max %d]",
			len(msg.Signature), MaxBlockSignatureSize)
		return messageError(op, ErrBlockSigTooLong, str)
	}
	return WriteVarBytes(w, 0, msg.Signature)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	// Block header bytes + serialized varint size for the number of
	// transactions + serialized varint size for the signature length +
	// signature bytes.
	n := blockHeaderLen +
		VarIntSerializeSize(uint64(len(msg.Transactions))) +
		VarIntSerializeSize(uint64(len(msg.Signature))) +
		len(msg.Signature)

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// defaultTransactionAlloc is the default size used for the backing array for
// transactions.  The transaction array will dynamically grow as needed, but
// this figure is intended to provide enough space for the number of
// transactions in the vast majority of blocks without needing to grow the
// backing array multiple times.
const defaultTransactionAlloc = 2048

// NewMsgBlock returns a new unit-e block message based on the provided block
// header.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}
