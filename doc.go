// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
united is a proof-of-stake Unit-e node written in Go.

The default options are sane for most users.  This means united will work 'out
of the box' for most users.  However, there are also a wide variety of flags
that can be used to control it.

The following section provides a usage overview which enumerates the flags.  An
interesting point to note is that the long form of all of these options
(except -C) can be specified in a configuration file that is automatically
parsed when united starts up.  By default, the configuration file is located at
~/.united/united.conf on POSIX-style operating systems and
%LOCALAPPDATA%\United\united.conf on Windows.  The -C (--configfile) flag, as
shown below, can be used to override this location.

Usage:

	united [OPTIONS]

Application Options:

	-A, --appdata=       Path to application home directory
	-V, --version        Display version information and exit
	-C, --configfile=    Path to configuration file
	-b, --datadir=       Directory to store data
	    --logdir=        Directory to log output
	    --nofilelogging  Disable file logging
	    --testnet        Use the test network
	    --regtest        Use the regression test network
	-d, --debuglevel=    Logging level for all subsystems {trace, debug, info,
	                     warn, error, critical} -- You may also specify
	                     <subsystem>=<level>,<subsystem2>=<level>,... to set
	                     the log level for individual subsystems -- Use show
	                     to list available subsystems (default: info)
	    --memorylimit=   Soft memory limit, in MiB, to give to the Go runtime
	                     -- Use 0 to run without a limit (default: 1024)
	    --profile=       Enable HTTP profiling on given [addr:]port -- NOTE
	                     port must be between 1024 and 65535
	    --cpuprofile=    Write CPU profile to the specified file
	    --memprofile=    Write mem profile to the specified file
	    --proposing      Propose new blocks staking the coins the built-in
	                     wallet controls
	    --noproposing    Disable block proposal even when the active network
	                     proposes by default

Help Options:

	-h, --help           Show this help message
*/
package main
