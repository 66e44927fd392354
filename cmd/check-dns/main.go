package main

import (
	"os"

	"github.com/scottastone/check-servers/internal/commands/dns"
)

func main() {
	if err := dns.Execute(); err != nil {
		os.Exit(1)
	}
}
