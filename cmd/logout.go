package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
)

const logoutDesc = `
Remove credentials stored for a Nexus server. Without an argument the
current server is logged out.

Examples:

    $ nexusctl logout https://nexus.example.com
`

func newLogoutCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout [server]",
		Short: "Logout from a Nexus server",
		Long:  logoutDesc,
		Args:  require.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var server string
			if len(args) > 0 {
				server = args[0]
			}
			return action.NewRegistryLogout(cfg).Run(out, server)
		},
	}
}
