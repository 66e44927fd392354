package main

import (
	"os"

	"github.com/scottastone/check-servers/internal/commands/docker"
)

func main() {
	if err := docker.Execute(); err != nil {
		os.Exit(1)
	}
}
