package servers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/internal/config"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <ip> <name> <local|remote>",
		Short: "Add a server to the user configuration file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, name := args[0], args[1]
			kind := config.Kind(args[2])
			if kind != config.KindLocal && kind != config.KindRemote {
				return fmt.Errorf("invalid server type %q: must be local or remote", args[2])
			}

			path, err := paths().AddServer(config.Server{IP: ip, Name: name, Kind: kind})
			if err != nil {
				return err
			}

			color.Green("Added server %s (%s) to %s", name, ip, path)
			return nil
		},
	}
}
