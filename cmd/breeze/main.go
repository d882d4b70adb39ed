// main is the entry point for the breeze CLI.
package main

import (
	"os"

	"github.com/nhollman/breeze/cmd"
	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Explicit cleanup instead of defer so it runs before os.Exit.
	iocache.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		os.Exit(1)
	}
}
