package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/cacheblk/blkstate/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script.toml>",
	Short: "Replay an operation script on a block.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(args[0])
		if err != nil {
			return err
		}

		return newSession(s, opts, cmd.OutOrStdout()).run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
