package servers

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/internal/ui/styles"
)

const removeCancel = "Cancel"

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Interactively remove a server from the user configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths()
			path, err := p.Locate()
			if err != nil {
				if errors.Is(err, config.ErrNotFound) {
					return fmt.Errorf("no configuration file found to remove a server from")
				}
				return err
			}
			if path == p.System {
				return fmt.Errorf("cannot edit %s: %w", path, config.ErrSystemConfig)
			}

			_, servers, err := config.LoadServers(path)
			if err != nil {
				return err
			}
			if len(servers) == 0 {
				fmt.Println(styles.Theme.Notice.Render("No servers found in the configuration file to remove."))
				return nil
			}

			selected, err := selectServer(servers)
			if err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					fmt.Println("Cancelled.")
					return nil
				}
				return err
			}
			if selected < 0 {
				fmt.Println("Cancelled.")
				return nil
			}

			srv := servers[selected]
			if err := p.RemoveServer(path, srv); err != nil {
				return err
			}

			color.Green("Removed server %s (%s) from %s", srv.Name, srv.IP, path)
			return nil
		},
	}
}

// selectServer prompts for one entry, returning its index in servers or -1
// when the user picked the cancel entry.
func selectServer(servers []config.Server) (int, error) {
	options := make([]string, 0, len(servers)+1)
	options = append(options, removeCancel)
	for _, srv := range servers {
		options = append(options, fmt.Sprintf("%-15s (%-15s) [%s]", srv.Name, srv.IP, srv.Kind))
	}

	var answer string
	prompt := &survey.Select{
		Message:  "Select a server to remove:",
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return -1, err
	}
	if answer == removeCancel {
		return -1, nil
	}
	for i, option := range options[1:] {
		if option == answer {
			return i, nil
		}
	}
	return -1, nil
}
