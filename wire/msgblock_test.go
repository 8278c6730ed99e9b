// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestBlockSerialize tests MsgBlock serialize and deserialize round trips
// including the trailing proposer signature.
func TestBlockSerialize(t *testing.T) {
	sig := bytes.Repeat([]byte{0xab}, 64)
	blocks := []*MsgBlock{
		// Empty block with no signature (genesis shape).
		{Header: *baseBlockHdr},

		// Block with a transaction and a proposer signature.
		{
			Header:       *baseBlockHdr,
			Transactions: []*MsgTx{baseTx},
			Signature:    sig,
		},
	}

	for i, block := range blocks {
		var buf bytes.Buffer
		err := block.Serialize(&buf)
		if err != nil {
			t.Errorf("Serialize #%d error %v", i, err)
			continue
		}
		if buf.Len() != block.SerializeSize() {
			t.Errorf("SerializeSize #%d - got %d, want %d", i,
				block.SerializeSize(), buf.Len())
			continue
		}

		var decoded MsgBlock
		err = decoded.Deserialize(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Errorf("Deserialize #%d error %v", i, err)
			continue
		}
		if !decoded.Header.Timestamp.Equal(block.Header.Timestamp) {
			t.Errorf("Deserialize #%d timestamp mismatch - got %v, "+
				"want %v", i, decoded.Header.Timestamp,
				block.Header.Timestamp)
			continue
		}
		decoded.Header.Timestamp = block.Header.Timestamp
		if !reflect.DeepEqual(decoded.Header, block.Header) {
			t.Errorf("Deserialize #%d header\n got: %s want: %s", i,
				spew.Sdump(decoded.Header),
				spew.Sdump(block.Header))
			continue
		}
		if !bytes.Equal(decoded.Signature, block.Signature) {
			t.Errorf("Deserialize #%d signature - got %x, want %x",
				i, decoded.Signature, block.Signature)
			continue
		}
		if len(decoded.Transactions) != len(block.Transactions) {
			t.Errorf("Deserialize #%d tx count - got %d, want %d",
				i, len(decoded.Transactions),
				len(block.Transactions))
			continue
		}
		for j, tx := range decoded.Transactions {
			if tx.TxHash() != block.Transactions[j].TxHash() {
				t.Errorf("Deserialize #%d tx #%d hash mismatch",
					i, j)
			}
		}
	}
}

// TestBlockSerializeTooLongSig ensures serializing a block with an oversized
// proposer signature is rejected.
func TestBlockSerializeTooLongSig(t *testing.T) {
	block := MsgBlock{
		Header:    *baseBlockHdr,
		Signature: bytes.Repeat([]byte{0x01}, MaxBlockSignatureSize+1),
	}
	var buf bytes.Buffer
	err := block.Serialize(&buf)
	if !errors.Is(err, ErrBlockSigTooLong) {
		t.Fatalf("Serialize wrong error - got %v, want %v", err,
			ErrBlockSigTooLong)
	}
}

// TestBlockOverflowErrors performs tests to ensure deserializing blocks which
// are intentionally crafted to use large values for the number of transactions
// are handled properly.
func TestBlockOverflowErrors(t *testing.T) {
	// Serialized header followed by a claim of ~uint64(0) transactions.
	buf := make([]byte, 0, MaxBlockHeaderPayload+MaxVarIntPayload)
	w := bytes.NewBuffer(buf)
	if err := baseBlockHdr.Serialize(w); err != nil {
		t.Fatalf("Serialize: unexpected error %v", err)
	}
	w.Write([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})

	var block MsgBlock
	err := block.Deserialize(bytes.NewReader(w.Bytes()))
	if !errors.Is(err, ErrTooManyTxs) {
		t.Fatalf("Deserialize wrong error - got %v, want %v", err,
			ErrTooManyTxs)
	}
}

// TestBlockTxHashes verifies the transaction hash list matches hashing each
// transaction individually.
func TestBlockTxHashes(t *testing.T) {
	block := MsgBlock{
		Header:       *baseBlockHdr,
		Transactions: []*MsgTx{baseTx},
	}
	hashes := block.TxHashes()
	if len(hashes) != 1 {
		t.Fatalf("TxHashes returned %d hashes, want 1", len(hashes))
	}
	if hashes[0] != baseTx.TxHash() {
		t.Fatalf("TxHashes mismatch - got %v, want %v", hashes[0],
			baseTx.TxHash())
	}
}
