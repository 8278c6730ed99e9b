// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposer

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrStaleTip, "ErrStaleTip"},
		{ErrKernelMiss, "ErrKernelMiss"},
		{ErrInvalidTimestamp, "ErrInvalidTimestamp"},
		{ErrImmatureCoin, "ErrImmatureCoin"},
		{ErrBadStakeModifier, "ErrBadStakeModifier"},
		{ErrBlockTooLarge, "ErrBlockTooLarge"},
		{ErrSignFailure, "ErrSignFailure"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrStaleTip == ErrStaleTip",
		err:       ErrStaleTip,
		target:    ErrStaleTip,
		wantMatch: true,
		wantAs:    ErrStaleTip,
	}, {
		name:      "Error.ErrStaleTip == ErrStaleTip",
		err:       makeError(ErrStaleTip, ""),
		target:    ErrStaleTip,
		wantMatch: true,
		wantAs:    ErrStaleTip,
	}, {
		name:      "Error.ErrStaleTip == Error.ErrStaleTip",
		err:       makeError(ErrStaleTip, ""),
		target:    makeError(ErrStaleTip, ""),
		wantMatch: true,
		wantAs:    ErrStaleTip,
	}, {
		name:      "ErrStaleTip != ErrKernelMiss",
		err:       ErrStaleTip,
		target:    ErrKernelMiss,
		wantMatch: false,
		wantAs:    ErrStaleTip,
	}, {
		name:      "Error.ErrStaleTip != ErrKernelMiss",
		err:       makeError(ErrStaleTip, ""),
		target:    ErrKernelMiss,
		wantMatch: false,
		wantAs:    ErrStaleTip,
	}, {
		name:      "ErrStaleTip != Error.ErrKernelMiss",
		err:       ErrStaleTip,
		target:    makeError(ErrKernelMiss, ""),
		wantMatch: false,
		wantAs:    ErrStaleTip,
	}, {
		name:      "Error.ErrStaleTip != Error.ErrKernelMiss",
		err:       makeError(ErrStaleTip, ""),
		target:    makeError(ErrKernelMiss, ""),
		wantMatch: false,
		wantAs:    ErrStaleTip,
	}, {
		name:      "Error.ErrStaleTip != io.EOF",
		err:       makeError(ErrStaleTip, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrStaleTip,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped is and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
