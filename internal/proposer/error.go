// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrStaleTip indicates the chain tip changed while a proposal was
	// being built, so the block under construction no longer extends the
	// best chain.
	ErrStaleTip = ErrorKind("ErrStaleTip")

	// ErrKernelMiss indicates the staked coin does not satisfy the stake
	// target for the slot a block claims.
	ErrKernelMiss = ErrorKind("ErrKernelMiss")

	// ErrInvalidTimestamp indicates a block timestamp is off the stake
	// timestamp grid, not after its parent, or too far in the future.
	ErrInvalidTimestamp = ErrorKind("ErrInvalidTimestamp")

	// ErrImmatureCoin indicates the staked coin has not matured enough to
	// stake a block on top of the claimed parent.
	ErrImmatureCoin = ErrorKind("ErrImmatureCoin")

	// ErrBadStakeModifier indicates a block header does not carry the
	// stake modifier derived from its parent and staked outpoint.
	ErrBadStakeModifier = ErrorKind("ErrBadStakeModifier")

	// ErrBlockTooLarge indicates an assembled block exceeds the maximum
	// allowed serialized block size.
	ErrBlockTooLarge = ErrorKind("ErrBlockTooLarge")

	// ErrSignFailure indicates the block signature could not be produced.
	ErrSignFailure = ErrorKind("ErrSignFailure")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a failed block proposal.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.  Proposal errors are
// transient by nature.  The proposer consumes them internally and defers to
// a later slot.
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
