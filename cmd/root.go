package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/repo"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/config"
	"github.com/coding-wepack/nexusctl/pkg/registry"
	"github.com/coding-wepack/nexusctl/pkg/settings"
	"github.com/coding-wepack/nexusctl/pkg/util/cmdutil"
)

const globalUsage = `The Nexus Repository Manager command line client

Common actions for nexusctl:

- nexusctl login:      verify and store credentials of a Nexus server
- nexusctl logout:     forget the credentials of a Nexus server
- nexusctl repo:       list repositories
- nexusctl asset:      list, search, download and delete assets
- nexusctl component:  list, search, download, upload and delete components
- nexusctl pull:       download every asset of a repository or a search

Commands talk to the server given by --server, or to the one of the last login.
`

func newRootCmd(cfg *action.Configuration, out io.Writer, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:               "nexusctl",
		Short:             "The Nexus Repository Manager command line client.",
		Long:              globalUsage,
		SilenceUsage:      true,
		PersistentPreRunE: cmdutil.PreRun,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetArgs(args)

	f := cmd.PersistentFlags()
	f.BoolVarP(&settings.Verbose, "verbose", "v", false, "Make the operation more talkative")
	f.StringVarP(&settings.Server, "server", "s", "", "Nexus base url, e.g. https://nexus.example.com")
	f.StringVarP(&settings.Username, "username", "u", "", "Nexus username")
	f.StringVarP(&settings.Password, "password", "p", "", "Nexus password")
	f.BoolVar(&settings.Insecure, "insecure", false, "Allow connections to TLS servers without certs")
	f.DurationVar(&settings.Timeout, "timeout", 0, "Timeout of each HTTP request, 0 for none")
	f.IntVar(&settings.MaxPages, "max-pages", 0, "Fail listings that need more pages than this, 0 for no limit")
	f.BoolVar(&settings.LegacyPath, "legacy-path", false, "Retry under the /nexus context path when the server answers 404")

	registryClient, err := registry.NewClient(
		registry.ClientOptVerbose(settings.Verbose),
		registry.ClientOptWriter(out),
		registry.ClientOptConfigFile(config.DefaultConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}
	cfg.RegistryClient = registryClient

	cmd.AddCommand(
		newVersionCmd(out),
		newLoginCmd(cfg, out),
		newLogoutCmd(cfg, out),
		repo.NewRepoCmd(cfg, out),
		newAssetCmd(cfg, out),
		newComponentCmd(cfg, out),
		newPullCmd(cfg, out),
	)

	return cmd, nil
}
