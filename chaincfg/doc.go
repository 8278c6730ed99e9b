// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

In addition to the main unit-e network, which is intended for the transfer
of monetary value, there is currently an active public test network and a
regression test network for local testing.  Each network has its own
parameter set: the consensus constants every node on the network must agree
on (block timing, size limits, maturity windows, the supply schedule), the
identity bytes that keep wire messages and addresses from crossing networks,
the reward and difficulty policies bound as replaceable functions, and the
genesis block that seeds the initial coin allocations.

Parameters instances are created once by the per-network constructor and
must never be modified afterwards; any change requires constructing a new
instance.  The constructors validate the supply invariant and the genesis
fund tables and panic when the hard-coded values are inconsistent, so a
misconfigured build fails at process start rather than after deployment.

Callers select a variant once at startup, typically from a command line
switch, and pass the resulting parameters to the rest of the node.
*/
package chaincfg
