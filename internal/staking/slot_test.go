// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"testing"
	"time"
)

// TestSlotTimestamp ensures slot selection truncates onto the absolute grid
// and always lands strictly after the parent timestamp.
func TestSlotTimestamp(t *testing.T) {
	const interval = 16 * time.Second

	// The grid is anchored at the unix epoch, so any multiple of the
	// interval is a slot.  2025-01-01 00:00:00 UTC is one.
	const base = int64(1735689600)

	tests := []struct {
		name   string
		now    int64
		parent int64
		want   int64
	}{{
		name:   "aligned time after the parent",
		now:    base + 32,
		parent: base,
		want:   base + 32,
	}, {
		name:   "unaligned time truncates onto the grid",
		now:    base + 45,
		parent: base,
		want:   base + 32,
	}, {
		name:   "truncating onto the parent slot advances",
		now:    base + 15,
		parent: base,
		want:   base + 16,
	}, {
		name:   "now equal to the parent",
		now:    base,
		parent: base,
		want:   base + 16,
	}, {
		name:   "now before the parent",
		now:    base - 100,
		parent: base + 160,
		want:   base + 176,
	}, {
		name:   "unaligned parent",
		now:    base,
		parent: base + 1,
		want:   base + 16,
	}}

	for _, test := range tests {
		got := SlotTimestamp(time.Unix(test.now, 0), time.Unix(test.parent, 0),
			interval)
		if got.Unix() != test.want {
			t.Errorf("%q: unexpected slot -- got %d, want %d", test.name,
				got.Unix(), test.want)
			continue
		}
		if !IsSlotTimestamp(got, interval) {
			t.Errorf("%q: slot %d is off the grid", test.name, got.Unix())
		}
		if !got.After(time.Unix(test.parent, 0)) {
			t.Errorf("%q: slot %d is not after the parent %d", test.name,
				got.Unix(), test.parent)
		}
	}
}

// TestIsSlotTimestamp ensures grid membership is decided by divisibility by
// the stake timestamp interval.
func TestIsSlotTimestamp(t *testing.T) {
	const interval = 16 * time.Second
	const base = int64(1735689600)

	tests := []struct {
		name      string
		timestamp int64
		want      bool
	}{{
		name:      "on the grid",
		timestamp: base,
		want:      true,
	}, {
		name:      "next slot",
		timestamp: base + 16,
		want:      true,
	}, {
		name:      "half an interval off",
		timestamp: base + 8,
		want:      false,
	}, {
		name:      "one second off",
		timestamp: base + 1,
		want:      false,
	}, {
		name:      "unix epoch",
		timestamp: 0,
		want:      true,
	}}

	for _, test := range tests {
		got := IsSlotTimestamp(time.Unix(test.timestamp, 0), interval)
		if got != test.want {
			t.Errorf("%q: unexpected result -- got %v, want %v", test.name,
				got, test.want)
		}
	}
}
