package repo

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/pkg/action"
)

const repoHelp = `
The repo command inspects the repositories of a Nexus server.

Examples:

    $ nexusctl repo list
    $ nexusctl repo list -o json
`

func NewRepoCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo [COMMAND]",
		Short: "The repo command inspects repositories.",
		Long:  repoHelp,
	}

	cmd.AddCommand(
		newListCmd(cfg, out),
	)

	return cmd
}
