package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/nexus"
	"github.com/coding-wepack/nexusctl/pkg/pull"
	"github.com/coding-wepack/nexusctl/pkg/settings"
	"github.com/coding-wepack/nexusctl/pkg/util/cmdutil"
)

const pullHelp = `
This command downloads every asset of a repository, or every asset matching a
search, one after another.

Examples:

    # Pull a whole raw repository, keeping its directory layout:
    $ nexusctl pull -r raw-hosted --dir ./backup --keep-paths

    # Pull one maven groupId, stop at the first failure:
    $ nexusctl pull -r maven-releases --maven-group-id com.acme --fail-fast

    # See what would be pulled:
    $ nexusctl pull -r maven-releases --dry-run
`

func newPullCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	var keepPaths bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download many assets at once.",
		Long:  pullHelp,
		Args:  require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			q, err := cmdutil.SearchQuery()
			if err != nil {
				return err
			}
			if q.IsEmpty() {
				return errors.New("pass --repository or search filters to choose what to pull")
			}

			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}

			var assets []nexus.Asset
			if onlyRepository(q) {
				log.Infof("List assets of repository [%s] ...", q.Repository)
				assets, err = client.ListAssets(c.Context(), q.Repository)
			} else {
				log.Info("Search assets ...")
				assets, err = client.SearchAssets(c.Context(), q)
			}
			if err != nil {
				return errors.Wrap(err, "failed to get asset list")
			}

			report, err := pull.Pull(c.Context(), client.Downloader(), assets, pull.Options{
				Dir:       settings.Dir,
				KeepPaths: keepPaths,
				FailFast:  settings.FailFast,
				DryRun:    settings.DryRun,
				Progress:  os.Stderr,
			})
			if report.TotalCount() > 0 {
				log.Info("Pull result:")
				report.Render(out)
			}
			return err
		},
	}

	cmdutil.AddSearchFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&settings.Dir, "dir", "d", ".", "Directory to write the files to")
	f.BoolVar(&keepPaths, "keep-paths", false, "Recreate the repository path of each asset below --dir")
	f.BoolVar(&settings.FailFast, "fail-fast", false, "Stop at the first failed download")
	f.BoolVar(&settings.DryRun, "dry-run", false, "Only list what would be pulled")

	return cmd
}

// onlyRepository reports whether q filters on the repository alone, which
// the plain listing endpoint serves without the search index.
func onlyRepository(q nexus.Query) bool {
	return q.Repository != "" && q == nexus.Query{Repository: q.Repository}
}
