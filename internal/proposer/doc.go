// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package proposer implements the proof-of-stake block proposal engine.

The proposer wakes up once per stake timestamp interval, or immediately when
nudged via Wake, and attempts to extend the current chain tip with a new
block.  An attempt snapshots the tip, asks the wallet for coins that have
matured enough to stake, and evaluates each coin's kernel for the current
slot until a winner is found.  Slots without a winning coin pass silently.
The lottery is decided by the kernel alone, so an idle slot simply leaves a
gap in time until a later slot wins.

A winning attempt selects candidate transactions, assembles a block whose
stakebase transaction pays the staked amount plus the block reward back to
the staking key, validates and signs the block, and hands it to the
publisher.  The tip is checked again right before publishing.  If another
block extended the chain in the meantime the attempt is discarded and
restarted a bounded number of times before deferring to the next slot.

Every collaborator is provided through the Config interfaces, so the engine
can be exercised against fakes in tests and wired to real implementations by
the caller.
*/
package proposer
