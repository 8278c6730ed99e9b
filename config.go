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
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"

	"github.com/unite-org/united/internal/version"
	"github.com/unite-org/united/sampleconfig"
)

const (
	defaultConfigFilename = "united.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "united.log"
	defaultMemoryLimit    = 1024
)

var (
	defaultHomeDir    = dcrutil.AppDataDir("united", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for united.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	HomeDir       string `short:"A" long:"appdata" description:"Path to application home directory"`
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile    string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir       string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	TestNet       bool   `long:"testnet" description:"Use the test network"`
	RegNet        bool   `long:"regtest" description:"Use the regression test network"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	MemoryLimit   int64  `long:"memorylimit" description:"Soft memory limit, in MiB, to give to the Go runtime -- Use 0 to run without a limit"`
	Profile       string `long:"profile" description:"Enable HTTP profiling on given [addr:]port -- NOTE port must be between 1024 and 65535"`
	CPUProfile    string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
	MemProfile    string `long:"memprofile" description:"Write mem profile to the specified file"`

	// Block proposal settings.
	Proposing   bool `long:"proposing" description:"Propose new blocks staking the coins the built-in wallet controls"`
	NoProposing bool `long:"noproposing" description:"Disable block proposal even when the active network proposes by default"`

	// proposing is the resolved block proposal setting.  It is filled in
	// during loadConfig from the two flags above and the defaults of the
	// active network.
	proposing bool
}

// errSuppressUsage is an error type for errors where the usage output should
// not be shown along with the error message.  It is used for errors that are
// not related to how the command is used, such as semantic validation errors
// after parsing succeeded.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// createDefaultConfigFile creates a default config file at the given
// destination path from the embedded sample config file.
func createDefaultConfigFile(destinationPath string) error {
	// Create the destination directory if it does not exist.
	err := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if err != nil {
		return err
	}

	dest, err := os.OpenFile(destinationPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer dest.Close()

	_, err = dest.WriteString(sampleconfig.United())
	return err
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in united functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
//
// The provided appName is used for the version display and usage output.
func loadConfig(appName string) (*config, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:     defaultHomeDir,
		ConfigFile:  defaultConfigFile,
		DebugLevel:  defaultLogLevel,
		DataDir:     defaultDataDir,
		LogDir:      defaultLogDir,
		MemoryLimit: defaultMemoryLimit,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	// Update the home directory if specified.  Since the home directory is
	// updated, other variables need to be updated to reflect the new
	// changes.
	if preCfg.HomeDir != "" {
		cfg.HomeDir, _ = filepath.Abs(cleanAndExpandPath(preCfg.HomeDir))

		if preCfg.ConfigFile == defaultConfigFile {
			defaultConfigFile = filepath.Join(cfg.HomeDir,
				defaultConfigFilename)
			preCfg.ConfigFile = defaultConfigFile
			cfg.ConfigFile = defaultConfigFile
		} else {
			cfg.ConfigFile = preCfg.ConfigFile
		}
		if preCfg.DataDir == defaultDataDir {
			cfg.DataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
		} else {
			cfg.DataDir = preCfg.DataDir
		}
		if preCfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
		} else {
			cfg.LogDir = preCfg.LogDir
		}
	}

	// Create the home directory if it doesn't already exist.
	if err := os.MkdirAll(cfg.HomeDir, 0700); err != nil {
		str := fmt.Sprintf("failed to create home directory: %v", err)
		return nil, nil, errSuppressUsage(str)
	}

	// Create a default config file when one does not exist and the config
	// file for the default home directory was not specifically overridden.
	// The regression test network is skipped since it is only intended for
	// throwaway setups driven entirely by command line options.
	configFilePath := cleanAndExpandPath(preCfg.ConfigFile)
	if !preCfg.RegNet && preCfg.ConfigFile == defaultConfigFile &&
		!fileExists(configFilePath) {

		err := createDefaultConfigFile(configFilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: "+
				"%v\n", err)
		}
	}

	// Load additional config from file.
	var configFileError error
	parser := newConfigParser(&cfg, flags.Default)
	if !preCfg.RegNet || preCfg.ConfigFile != defaultConfigFile {
		err := flags.NewIniParser(parser).ParseFile(configFilePath)
		if err != nil {
			var e *os.PathError
			if !errors.As(err, &e) {
				return nil, nil, err
			}
			configFileError = err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if cfg.TestNet {
		numNets++
		activeNetParams = &testNetParams
	}
	if cfg.RegNet {
		numNets++
		activeNetParams = &regNetParams
	}
	if numNets > 1 {
		return nil, nil, errSuppressUsage("the testnet and regtest params " +
			"can't be used together -- choose one of the two")
	}

	// All data is specific to a network, so namespacing the data directory
	// means each individual piece of serialized data does not have to worry
	// about changing names per network and such.
	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.DataDir = filepath.Join(cfg.DataDir, activeNetParams.dataDirName)

	// Append the network type to the log directory so it is "namespaced"
	// per network in the same fashion as the data directory.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, activeNetParams.dataDirName)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, errSuppressUsage(fmt.Sprintf("--debuglevel: %v", err))
	}

	// The memory limit is handed to the runtime which requires it to be a
	// non-negative number of bytes.
	if cfg.MemoryLimit < 0 {
		return nil, nil, errSuppressUsage("--memorylimit must not be negative")
	}

	// Resolve the block proposal setting.  Both flags express an explicit
	// choice, so setting both of them is treated as an error rather than
	// silently picking one.
	if cfg.Proposing && cfg.NoProposing {
		return nil, nil, errSuppressUsage("the proposing and noproposing " +
			"options can't be used together -- choose at most one")
	}
	cfg.proposing = activeNetParams.DefaultSettings.Proposing
	if cfg.Proposing {
		cfg.proposing = true
	}
	if cfg.NoProposing {
		cfg.proposing = false
	}

	// Expand the profile output paths so relative and ~ based paths work as
	// expected.
	cfg.CPUProfile = cleanAndExpandPath(cfg.CPUProfile)
	cfg.MemProfile = cleanAndExpandPath(cfg.MemProfile)

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		untdLog.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
