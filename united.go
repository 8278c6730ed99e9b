// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2025-2026 The Unit-e developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/unite-org/united/internal/limits"
	"github.com/unite-org/united/internal/version"
)

var cfg *config

// humanizeBytes returns the provided number of bytes in humanized form with
// IEC units (aka binary prefixes such as KiB and MiB).
func humanizeBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// unitedMain is the real main function for united.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func unitedMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	tcfg, _, err := loadConfig(appName)
	if err != nil {
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem.
	ctx := shutdownListener()
	defer untdLog.Info("Shutdown complete")

	// Show version and home dir at startup.
	untdLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	untdLog.Infof("Home dir: %s", cfg.HomeDir)
	if cfg.NoFileLogging {
		untdLog.Info("File logging disabled")
	}

	// Block processing and proposal can cause bursty allocations.  This
	// limits the garbage collector from excessively overallocating during
	// bursts by imposing a soft upper memory limit while leaving the target
	// GC percentage at the default value to significantly reduce the number
	// of GC cycles.
	if cfg.MemoryLimit > 0 {
		softMemLimit := cfg.MemoryLimit << 20
		limits.SetMemoryLimit(softMemLimit)
		untdLog.Infof("Soft memory limit: %s", humanizeBytes(softMemLimit))
	}

	// Enable http profile server if requested.  Note that since the server
	// may be started now or dynamically started and stopped later, the stop
	// call is always deferred to ensure it is always stopped during process
	// shutdown.
	var profiler profileServer
	defer profiler.Stop()
	if cfg.Profile != "" {
		const allowNonLoopback = true
		if err := profiler.Start(cfg.Profile, allowNonLoopback); err != nil {
			untdLog.Warnf("unable to start profile server: %v", err)
			return err
		}
	}

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			untdLog.Errorf("Unable to create cpu profile: %v", err.Error())
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	// Write mem profile if requested.
	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			untdLog.Errorf("Unable to create mem profile: %v", err)
			return err
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	// Return now if a shutdown signal was triggered.
	if shutdownRequested(ctx) {
		return nil
	}

	// Create the node which houses the chain, the wallet, and the block
	// proposer for the active network.
	n, err := newNode(activeNetParams.Params, cfg.proposing)
	if err != nil {
		untdLog.Errorf("Unable to create node: %v", err)
		return err
	}

	// Run the node.  This will block until the context is cancelled which
	// happens when the interrupt signal is received from an OS signal or
	// shutdown is requested through one of the subsystems.
	n.Run(ctx)
	untdLog.Info("Node shutdown complete")
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := unitedMain(); err != nil {
		os.Exit(1)
	}
}
