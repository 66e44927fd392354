package main

import (
	"os"

	"github.com/scottastone/check-servers/internal/commands/servers"
)

func main() {
	if err := servers.Execute(); err != nil {
		os.Exit(1)
	}
}
