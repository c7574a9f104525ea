package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/printer"
	"github.com/coding-wepack/nexusctl/pkg/settings"
	"github.com/coding-wepack/nexusctl/pkg/util/cmdutil"
)

const assetHelp = `
The asset command works on single files stored in Nexus repositories.

Examples:

    $ nexusctl asset list -r raw-hosted
    $ nexusctl asset search --maven-group-id com.acme --sort version --order desc
    $ nexusctl asset get bWF2ZW4tcmVsZWFzZXM6... --dir ./out
    $ nexusctl asset download -r maven-releases --name core --version 1.0 --file-name core.jar
    $ nexusctl asset delete bWF2ZW4tcmVsZWFzZXM6...
`

func newAssetCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset [COMMAND]",
		Short: "List, search, download and delete assets.",
		Long:  assetHelp,
	}

	cmd.AddCommand(
		newAssetListCmd(cfg, out),
		newAssetSearchCmd(cfg, out),
		newAssetGetCmd(cfg, out),
		newAssetDownloadCmd(cfg, out),
		newAssetDeleteCmd(cfg, out),
	)

	return cmd
}

func newAssetListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the assets of a repository",
		Args:    require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if settings.Repository == "" {
				return errors.New("--repository is required")
			}
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			assets, err := client.ListAssets(c.Context(), settings.Repository)
			if err != nil {
				return err
			}
			return printer.PrintAssets(out, settings.Output, assets)
		},
	}

	cmd.Flags().StringVarP(&settings.Repository, "repository", "r", "", "Repository to list")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func newAssetSearchCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search assets",
		Args:  require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			q, err := cmdutil.SearchQuery()
			if err != nil {
				return err
			}
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			assets, err := client.SearchAssets(c.Context(), q)
			if err != nil {
				return err
			}
			return printer.PrintAssets(out, settings.Output, assets)
		},
	}

	cmdutil.AddSearchFlags(cmd)
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func newAssetGetCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Download an asset by id",
		Args:  require.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			file, err := client.GetAsset(c.Context(), args[0], settings.Dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&settings.Dir, "dir", "d", ".", "Directory to write the file to")

	return cmd
}

func newAssetDownloadCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the single asset matching a search",
		Long: `Download the single asset matching a search. The server refuses
searches matching more than one asset, so narrow the filters down.`,
		Args: require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if settings.FileName == "" {
				return errors.New("--file-name is required")
			}
			q, err := cmdutil.SearchQuery()
			if err != nil {
				return err
			}
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			file, err := client.SearchAndDownloadAsset(c.Context(), q, settings.FileName, settings.Dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, file)
			return nil
		},
	}

	cmdutil.AddSearchFlags(cmd)
	cmd.Flags().StringVarP(&settings.Dir, "dir", "d", ".", "Directory to write the file to")
	cmd.Flags().StringVar(&settings.FileName, "file-name", "", "Name of the written file")

	return cmd
}

func newAssetDeleteCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [ID...]",
		Short: "Delete assets by id",
		Args:  require.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := client.DeleteAsset(c.Context(), id); err != nil {
					return err
				}
				log.Info("Deleted asset", logfields.String("id", id))
			}
			return nil
		},
	}
}
