// Command blkstate replays cache block operation scripts and reports the
// resulting state transitions.
package main

import "github.com/sarchlab/cacheblk/blkstate/cmd"

func main() {
	cmd.Execute()
}
