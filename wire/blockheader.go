// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can be.
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp 4
// bytes + Bits 4 bytes + StakeModifier 32 bytes + Height 4 bytes.
const MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 3)

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) and headers (MsgHeaders) messages.
//
// The proof that the proposer of a block was entitled to extend the chain is
// carried by the stake modifier together with the staked coin referenced by
// the block's coinbase transaction, so there is no nonce field.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.  Proof-of-stake
	// timestamps are constrained to the stake timestamp grid by consensus,
	// which keeps the encoded value a whole number of seconds.
	Timestamp time.Time

	// Difficulty target for the block in compact form.
	Bits uint32

	// Stake modifier for the kernel protocol.  Mixes the entropy of the
	// staked outpoints of all ancestors so stakers cannot grind future
	// kernels ahead of time.
	StakeModifier chainhash.Hash

	// Height is the block height in the block chain.
	Height uint32
}

// blockHeaderLen is a constant that represents the number of bytes for a block
// header.
const blockHeaderLen = MaxBlockHeaderPayload

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and hash everything.  Ignore the error returns
	// since there is no way the encode could fail except being out of
	// memory which would cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, h)

	return chainhash.HashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver using a format
// that is suitable for long-term storage such as a database while respecting
// the Version field.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.  As a result, make use of
	// readBlockHeader.
	return readBlockHeader(r, 0, h)
}

// Serialize encodes a block header from the receiver to w using a format
// that is suitable for long-term storage such as a database while respecting
// the Version field.
func (h *BlockHeader) Serialize(w io.Writer) error {
	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.  As a result, make use of
	// writeBlockHeader.
	return writeBlockHeader(w, 0, h)
}

// Bytes returns the serialized encoding of the block header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(MaxBlockHeaderPayload)
	err := h.Serialize(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewBlockHeader returns a new BlockHeader using the provided parameters.  The
// timestamp is rounded down to the nearest second since block header
// timestamps only have second precision on the wire.
func NewBlockHeader(version int32, prevHash, merkleRoot *chainhash.Hash,
	bits uint32, stakeModifier *chainhash.Hash, height uint32) *BlockHeader {

	return &BlockHeader{
		Version:       version,
		PrevBlock:     *prevHash,
		MerkleRoot:    *merkleRoot,
		Timestamp:     time.Unix(time.Now().Unix(), 0),
		Bits:          bits,
		StakeModifier: *stakeModifier,
		Height:        height,
	}
}

// readBlockHeader reads a block header from r.  See Deserialize for decoding
// block headers stored to disk, such as in a database, as opposed to decoding
// from the wire.
func readBlockHeader(r io.Reader, pver uint32, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*uint32Time)(&bh.Timestamp), &bh.Bits, &bh.StakeModifier,
		&bh.Height)
}

// writeBlockHeader writes a block header to w.  See Serialize for encoding
// block headers to be stored to disk, such as in a database, as opposed to
// encoding for the wire.
func writeBlockHeader(w io.Writer, pver uint32, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return writeElements(w, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, &bh.Bits, &bh.StakeModifier, &bh.Height)
}
