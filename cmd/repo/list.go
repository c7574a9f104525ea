package repo

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/printer"
	"github.com/coding-wepack/nexusctl/pkg/settings"
	"github.com/coding-wepack/nexusctl/pkg/util/cmdutil"
)

func newListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List repositories",
		Args:    require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			repos, err := client.ListRepositories(c.Context())
			if err != nil {
				return err
			}
			return printer.PrintRepositories(out, settings.Output, repos)
		},
	}

	cmdutil.AddOutputFlag(cmd)

	return cmd
}
