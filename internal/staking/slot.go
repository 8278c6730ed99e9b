// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"time"
)

// SlotTimestamp returns the proposal slot for the provided wall clock time
// when building on a parent with the given timestamp.  Slots are absolute
// unix timestamps that are multiples of the stake timestamp interval, and
// the returned slot is always strictly after the parent timestamp.
func SlotTimestamp(now, parentTime time.Time, interval time.Duration) time.Time {
	secs := int64(interval / time.Second)
	slot := now.Unix()
	slot -= slot % secs
	if parent := parentTime.Unix(); slot <= parent {
		slot = parent - parent%secs + secs
	}
	return time.Unix(slot, 0)
}

// IsSlotTimestamp returns whether the provided timestamp falls exactly on
// the slot grid defined by the stake timestamp interval.
func IsSlotTimestamp(timestamp time.Time, interval time.Duration) bool {
	secs := int64(interval / time.Second)
	return timestamp.Unix()%secs == 0
}
