// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNoGenesisFunds indicates an attempt to build a genesis block
	// without any fund allocations.
	ErrNoGenesisFunds = ErrorKind("ErrNoGenesisFunds")

	// ErrGenesisBuilderReused indicates an attempt to build a genesis
	// block from a builder whose accumulated state has already been
	// consumed by a previous build.
	ErrGenesisBuilderReused = ErrorKind("ErrGenesisBuilderReused")

	// ErrBadFundTotal indicates the genesis fund allocations do not sum to
	// the initial supply declared by the network parameters.
	ErrBadFundTotal = ErrorKind("ErrBadFundTotal")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a chain configuration error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
