// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uteutil

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/base58"
	"github.com/decred/dcrd/bech32"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/unite-org/united/chaincfg"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrMalformedAddress describes an error where an address is
	// improperly formatted, either due to an incorrect length of the
	// hashed data or an unexpected overall format.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrUnknownAddressType describes an error where an address can not
	// be decoded as a specific address type due to the string encoding
	// beginning with an identifier byte unknown to the provided network.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// UnsupportedWitnessVerError describes an error where a segwit address being
// decoded is of an unsupported witness version.
type UnsupportedWitnessVerError byte

func (e UnsupportedWitnessVerError) Error() string {
	return "unsupported witness version: " + strconv.Itoa(int(e))
}

// UnsupportedWitnessProgLenError describes an error where a segwit address
// being decoded is of an unsupported witness program length for its version.
type UnsupportedWitnessProgLenError int

func (e UnsupportedWitnessProgLenError) Error() string {
	return "unsupported witness program length: " + strconv.Itoa(int(e))
}

// Hash160 calculates the hash ripemd160(blake256(b)).
func Hash160(buf []byte) []byte {
	b256Hash := blake256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(b256Hash[:])
	return hasher.Sum(nil)
}

// checksum returns the first four bytes of BLAKE256(BLAKE256(input)).
func checksum(input []byte) (cksum [4]byte) {
	h := blake256.Sum256(input)
	h2 := blake256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return
}

// checkEncode prepends the provided identifier byte, appends a four byte
// checksum of the result, and returns the base58 encoding.  The overall
// format is:
//
//	1-byte network and address type || data || 4-byte checksum
func checkEncode(input []byte, netID byte) string {
	b := make([]byte, 0, 1+len(input)+4)
	b = append(b, netID)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// checkDecode decodes a string that was encoded with checkEncode and
// verifies the checksum.
func checkDecode(input string) (result []byte, netID byte, err error) {
	decoded := base58.Decode(input)
	if len(decoded) < 5 {
		return nil, 0, ErrMalformedAddress
	}
	netID = decoded[0]
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, 0, ErrChecksumMismatch
	}
	payload := decoded[1 : len(decoded)-4]
	result = append(result, payload...)
	return result, netID, nil
}

// encodeSegWitAddress creates a bech32 encoded address string representation
// from witness version and witness program.
func encodeSegWitAddress(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	// Group the address bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the
	// resulting bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)
	bech, err := bech32.Encode(hrp, combined)
	if err != nil {
		return "", err
	}

	// Check validity by decoding the created address.
	version, program, err := decodeSegWitAddress(bech)
	if err != nil {
		return "", fmt.Errorf("invalid segwit address: %v", err)
	}
	if version != witnessVersion || !bytes.Equal(program, witnessProgram) {
		return "", errors.New("invalid segwit address")
	}

	return bech, nil
}

// decodeSegWitAddress parses a bech32 encoded segwit address string and
// returns the witness version and witness program byte representation.
func decodeSegWitAddress(address string) (byte, []byte, error) {
	// Decode the bech32 encoded address.
	_, data, err := bech32.Decode(address)
	if err != nil {
		return 0, nil, err
	}

	// The first byte of the decoded address is the witness version, it
	// must exist.
	if len(data) < 1 {
		return 0, nil, errors.New("no witness version")
	}

	// ...and be <= 16.
	version := data[0]
	if version > 16 {
		return 0, nil, fmt.Errorf("invalid witness version: %v", version)
	}

	// The remaining characters of the address returned are grouped into
	// words of 5 bits.  In order to restore the original witness program
	// bytes, we'll need to regroup into 8 bit words.
	regrouped, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}

	// The regrouped data must be between 2 and 40 bytes.
	if len(regrouped) < 2 || len(regrouped) > 40 {
		return 0, nil, errors.New("invalid data length")
	}

	// For witness version 0, address MUST be exactly 20 or 32 bytes.
	if version == 0 && len(regrouped) != 20 && len(regrouped) != 32 {
		return 0, nil, fmt.Errorf("invalid data length for witness "+
			"version 0: %v", len(regrouped))
	}

	return version, regrouped, nil
}

// Address is an interface type for any type of destination a transaction
// output may spend to.  This includes pay-to-pubkey-hash (P2PKH),
// pay-to-script-hash (P2SH), and pay-to-witness-pubkey-hash (P2WPKH).
// Address is designed to be generic enough that other kinds of addresses
// may be added in the future without changing the decoding and encoding
// API.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.  It is equivalent to calling Address, but is provided
	// so the type can be used as a fmt.Stringer.
	String() string

	// Address returns the string encoding of the payment address
	// associated with the Address value.
	Address() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// PaymentScript returns the script to pay the address from a
	// transaction output.
	PaymentScript() []byte

	// Hash160 returns the Hash160(data) where data is the data normally
	// hashed to 160 bits from the respective address type.
	Hash160() *[ripemd160.Size]byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*chaincfg.Params) bool
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for a known address type and is for the
// provided network.
func DecodeAddress(addr string, net *chaincfg.Params) (Address, error) {
	// Bech32 encoded segwit addresses start with the network's human
	// readable part followed by '1'.
	if strings.HasPrefix(strings.ToLower(addr), net.Bech32HRPSegwit+"1") {
		witnessVer, witnessProg, err := decodeSegWitAddress(addr)
		if err != nil {
			return nil, err
		}

		// We currently only support P2WPKH addresses, which are
		// version 0 with a 20 byte program.
		if witnessVer != 0 {
			return nil, UnsupportedWitnessVerError(witnessVer)
		}
		if len(witnessProg) != ripemd160.Size {
			return nil, UnsupportedWitnessProgLenError(len(witnessProg))
		}
		return newAddressWitnessPubKeyHash(net.Bech32HRPSegwit, witnessProg)
	}

	// Otherwise the address is base58 check encoded with a one byte
	// identifier for the network and address type.
	decoded, netID, err := checkDecode(addr)
	if err != nil {
		return nil, err
	}
	switch netID {
	case net.PubKeyHashAddrID:
		return newAddressPubKeyHash(decoded, netID)

	case net.ScriptHashAddrID:
		return newAddressScriptHashFromHash(decoded, netID)

	default:
		return nil, ErrUnknownAddressType
	}
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, net.PubKeyHashAddrID)
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking it
// up through its parameters.  This is useful when creating a new address
// structure from a string encoding where the identifier byte is already
// known.
func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash, error) {
	// Ensure the provided pubkey hash length is valid.
	if len(pkHash) != ripemd160.Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}
	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-pubkey-hash address.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) Address() string {
	return checkEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash.  Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// PaymentScript returns the pay-to-pubkey-hash script:
// OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) PaymentScript() []byte {
	script := make([]byte, 0, 25)
	script = append(script, 0x76, 0xa9, 0x14) // OP_DUP OP_HASH160 OP_DATA_20
	script = append(script, a.hash[:]...)
	return append(script, 0x88, 0xac) // OP_EQUALVERIFY OP_CHECKSIG
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the pubkey hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// IsForNet returns whether or not the pay-to-pubkey-hash address is
// associated with the passed network.
func (a *AddressPubKeyHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.PubKeyHashAddrID
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressScriptHash returns a new AddressScriptHash from a redeem script.
func NewAddressScriptHash(serializedScript []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	return newAddressScriptHashFromHash(Hash160(serializedScript),
		net.ScriptHashAddrID)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, net *chaincfg.Params) (*AddressScriptHash, error) {
	return newAddressScriptHashFromHash(scriptHash, net.ScriptHashAddrID)
}

// newAddressScriptHashFromHash is the internal API to create a script hash
// address with a known leading identifier byte for a network, rather than
// looking it up through its parameters.
func newAddressScriptHashFromHash(scriptHash []byte, netID byte) (*AddressScriptHash, error) {
	// Check for a valid script hash length.
	if len(scriptHash) != ripemd160.Size {
		return nil, errors.New("scriptHash must be 20 bytes")
	}
	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-script-hash address.
//
// Part of the Address interface.
func (a *AddressScriptHash) Address() string {
	return checkEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a script hash.  Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// PaymentScript returns the pay-to-script-hash script:
// OP_HASH160 <hash> OP_EQUAL.
//
// Part of the Address interface.
func (a *AddressScriptHash) PaymentScript() []byte {
	script := make([]byte, 0, 23)
	script = append(script, 0xa9, 0x14) // OP_HASH160 OP_DATA_20
	script = append(script, a.hash[:]...)
	return append(script, 0x87) // OP_EQUAL
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the script hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// IsForNet returns whether or not the pay-to-script-hash address is
// associated with the passed network.
func (a *AddressScriptHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.ScriptHashAddrID
}

// AddressWitnessPubKeyHash is an Address for a pay-to-witness-pubkey-hash
// (P2WPKH) output.
type AddressWitnessPubKeyHash struct {
	hrp            string
	witnessVersion byte
	witnessProgram [ripemd160.Size]byte
}

// NewAddressWitnessPubKeyHash returns a new AddressWitnessPubKeyHash.
// witnessProg must be 20 bytes.
func NewAddressWitnessPubKeyHash(witnessProg []byte, net *chaincfg.Params) (*AddressWitnessPubKeyHash, error) {
	return newAddressWitnessPubKeyHash(net.Bech32HRPSegwit, witnessProg)
}

// newAddressWitnessPubKeyHash is an internal helper function to create an
// AddressWitnessPubKeyHash with a known human-readable part, rather than
// looking it up through its parameters.
func newAddressWitnessPubKeyHash(hrp string, witnessProg []byte) (*AddressWitnessPubKeyHash, error) {
	// Check for valid program length for witness version 0, which is 20
	// for P2WPKH.
	if len(witnessProg) != ripemd160.Size {
		return nil, errors.New("witness program must be 20 bytes for " +
			"p2wpkh")
	}

	addr := &AddressWitnessPubKeyHash{
		hrp:            strings.ToLower(hrp),
		witnessVersion: 0x00,
	}
	copy(addr.witnessProgram[:], witnessProg)
	return addr, nil
}

// Address returns the bech32 string encoding of a pay-to-witness-pubkey-hash
// address.
//
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) Address() string {
	str, err := encodeSegWitAddress(a.hrp, a.witnessVersion,
		a.witnessProgram[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program bytes.  Part of the Address
// interface.
func (a *AddressWitnessPubKeyHash) ScriptAddress() []byte {
	return a.witnessProgram[:]
}

// PaymentScript returns the version 0 witness program script:
// OP_0 <20-byte-hash>.
//
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) PaymentScript() []byte {
	script := make([]byte, 0, 22)
	script = append(script, 0x00, 0x14) // OP_0 OP_DATA_20
	return append(script, a.witnessProgram[:]...)
}

// String returns a human-readable string for the pay-to-witness-pubkey-hash
// address.  This is equivalent to calling Address, but is provided so the
// type can be used as a fmt.Stringer.
func (a *AddressWitnessPubKeyHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the witness program, which for a
// P2WPKH address is the pubkey hash.  This can be useful when an array is
// more appropriate than a slice (for example, when used as map keys).
func (a *AddressWitnessPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.witnessProgram
}

// IsForNet returns whether or not the pay-to-witness-pubkey-hash address is
// associated with the passed network.
func (a *AddressWitnessPubKeyHash) IsForNet(net *chaincfg.Params) bool {
	return a.hrp == net.Bech32HRPSegwit
}

// Hrp returns the human-readable part of the bech32 encoded address.
func (a *AddressWitnessPubKeyHash) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the address.
func (a *AddressWitnessPubKeyHash) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the address.
func (a *AddressWitnessPubKeyHash) WitnessProgram() []byte {
	return a.witnessProgram[:]
}
