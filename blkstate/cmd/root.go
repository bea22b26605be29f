// Package cmd provides the command-line interface of blkstate.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Environment variables that provide flag defaults. They may be set in a
// .env file in the working directory.
const (
	envDebugFlags = "BLKSTATE_DEBUG_FLAGS"
	envVerbosity  = "BLKSTATE_VERBOSITY"
	envDB         = "BLKSTATE_DB"
)

type options struct {
	debugFlags string
	verbosity  int
	dbPath     string
	envFile    string
}

var opts = options{
	debugFlags: "Cache",
	verbosity:  1,
	envFile:    ".env",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blkstate",
	Short: "blkstate replays cache block operations and traces their state.",
	Long: `blkstate replays scripts of cache block operations (insert, ` +
		`invalidate, set-dirty, ...) on a discrete-event engine and traces ` +
		`every coherence state change of the block.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.debugFlags, "debug-flags", opts.debugFlags,
		"comma-separated debug flags to enable (Cache, Event)")
	flags.IntVar(&opts.verbosity, "verbosity", opts.verbosity,
		"highest debug level to print")
	flags.StringVar(&opts.dbPath, "db", opts.dbPath,
		"record transitions into <db>.sqlite3")
	flags.StringVar(&opts.envFile, "env-file", opts.envFile,
		"file to read environment defaults from")
}

// loadEnv reads the env file and applies environment defaults to the flags
// the user did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	err := godotenv.Load(opts.envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", opts.envFile, err)
	}

	flags := cmd.Flags()

	if v, ok := os.LookupEnv(envDebugFlags); ok && !flags.Changed("debug-flags") {
		opts.debugFlags = v
	}

	if v, ok := os.LookupEnv(envDB); ok && !flags.Changed("db") {
		opts.dbPath = v
	}

	if v, ok := os.LookupEnv(envVerbosity); ok && !flags.Changed("verbosity") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envVerbosity, err)
		}

		opts.verbosity = n
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
