package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/cacheblk/blkstate/script"
)

// demoScript fills a block in the shared state, lets the protocol grant write
// permission and then writes to it.
const demoScript = `
domain = "L1"

[[ops]]
at = 10
kind = "insert"
tag = 0x40
requestor = 3
task = 7
partition = 0

[[ops]]
at = 10
kind = "print"
verbosity = 1

[[ops]]
at = 11
kind = "set-writable"

[[ops]]
at = 11
kind = "print"
verbosity = 1

[[ops]]
at = 12
kind = "set-dirty"
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a built-in fill, upgrade and write scenario.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := script.Parse(demoScript)
		if err != nil {
			return err
		}

		return newSession(s, opts, cmd.OutOrStdout()).run()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
