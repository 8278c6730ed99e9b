// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package staking provides the pure functions behind the proof-of-stake block
lottery.

Every stake timestamp interval forms one proposal slot on an absolute grid of
unix timestamps.  For each slot, a stakeable coin produces a single kernel
digest that commits to the parent block's stake modifier, the coin's
outpoint, and the slot timestamp.  The coin wins the slot when the digest,
interpreted as a number, does not exceed the target difficulty scaled by the
staked amount, so the chance of winning grows linearly with the stake.

The package also derives the stake modifier chain that seeds each lottery and
decides when a coin has matured enough to take part.

All functions are deterministic and free of IO, so callers can evaluate any
coin against any slot without holding chain state locks.
*/
package staking
