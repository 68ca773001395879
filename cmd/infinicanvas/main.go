// Command infinicanvas opens, renders and replays infinite node canvases.
package main

import (
	"os"

	"github.com/phanxgames/infinicanvas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
