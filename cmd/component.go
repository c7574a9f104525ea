package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/cmd/require"
	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/nexus"
	"github.com/coding-wepack/nexusctl/pkg/printer"
	"github.com/coding-wepack/nexusctl/pkg/settings"
	"github.com/coding-wepack/nexusctl/pkg/util/cmdutil"
	"github.com/coding-wepack/nexusctl/pkg/util/ioutils"
)

const componentHelp = `
The component command works on versioned components and all of their assets.

Examples:

    $ nexusctl component list -r maven-public
    $ nexusctl component search --group com.acme --name core
    $ nexusctl component get Y29tcG9uZW50... --dir ./out
    $ nexusctl component delete Y29tcG9uZW50...

    # upload files to a raw repository
    $ nexusctl component upload -r raw-hosted --directory /docs readme.txt guide.pdf

    # upload with format specific fields
    $ nexusctl component upload -r maven-releases \
          --field maven2.groupId=com.acme --field maven2.artifactId=core \
          --field maven2.version=1.0 --field maven2.asset1.extension=jar \
          --asset maven2.asset1=./core-1.0.jar
`

func newComponentCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component [COMMAND]",
		Short: "List, search, download, upload and delete components.",
		Long:  componentHelp,
	}

	cmd.AddCommand(
		newComponentListCmd(cfg, out),
		newComponentSearchCmd(cfg, out),
		newComponentGetCmd(cfg, out),
		newComponentDeleteCmd(cfg, out),
		newComponentUploadCmd(cfg, out),
	)

	return cmd
}

func newComponentListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the components of a repository",
		Args:    require.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if settings.Repository == "" {
				return errors.New("--repository is required")
			}
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			components, err := client.ListComponents(c.Context(), settings.Repository)
			if err != nil {
				return err
			}
			return printer.PrintComponents(out, settings.Output, components)
		},
	}

	cmd.Flags().StringVarP(&settings.Repository, "repository", "r", "", "Repository to list")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func newComponentSearchCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search components",
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
			components, err := client.SearchComponents(c.Context(), q)
			if err != nil {
				return err
			}
			return printer.PrintComponents(out, settings.Output, components)
		},
	}

	cmdutil.AddSearchFlags(cmd)
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func newComponentGetCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Download every asset of a component",
		Args:  require.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			files, err := client.GetComponent(c.Context(), args[0], settings.Dir)
			if err != nil {
				return err
			}
			for _, file := range files {
				_, _ = fmt.Fprintln(out, file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&settings.Dir, "dir", "d", ".", "Directory to write the files to")

	return cmd
}

func newComponentDeleteCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [ID...]",
		Short: "Delete components and their assets by id",
		Args:  require.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := client.DeleteComponent(c.Context(), id); err != nil {
					return err
				}
				log.Info("Deleted component", logfields.String("id", id))
			}
			return nil
		},
	}
}

func newComponentUploadCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	var (
		fields map[string]string
		assets []string
	)

	cmd := &cobra.Command{
		Use:   "upload [FILE...]",
		Short: "Upload a component",
		Long: `Upload a component. With --directory the arguments are files for a raw
repository; otherwise pass format specific --field and --asset values.`,
		RunE: func(c *cobra.Command, args []string) error {
			if settings.Repository == "" {
				return errors.New("--repository is required")
			}

			var (
				upload nexus.UploadComponentRequest
				files  []*os.File
				err    error
			)
			defer func() {
				for _, f := range files {
					ioutils.QuiteClose(f)
				}
			}()

			if settings.Directory != "" {
				if len(assets) > 0 {
					return errors.New("--asset can't be combined with --directory")
				}
				var parts []nexus.UploadAsset
				files, parts, err = openUploadFiles(args)
				if err != nil {
					return err
				}
				upload = nexus.RawUpload(settings.Directory, parts...)
			} else {
				if len(args) > 0 {
					return errors.New("files as arguments need --directory, use --asset otherwise")
				}
				var parts []nexus.UploadAsset
				files, parts, err = openUploadAssets(assets)
				if err != nil {
					return err
				}
				upload = nexus.UploadComponentRequest{Fields: map[string]string{}, Assets: parts}
			}
			for k, v := range fields {
				upload.Fields[k] = v
			}

			client, err := cfg.NexusClient()
			if err != nil {
				return err
			}
			if err = client.UploadComponent(c.Context(), settings.Repository, upload); err != nil {
				return err
			}
			log.Info("Uploaded component",
				logfields.String("repository", settings.Repository),
				logfields.Int("assets", len(upload.Assets)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&settings.Repository, "repository", "r", "", "Repository to upload to")
	f.StringVar(&settings.Directory, "directory", "", "Target directory of a raw upload")
	f.StringToStringVar(&fields, "field", nil, "Form field as key=value, repeatable")
	f.StringArrayVar(&assets, "asset", nil, "File part as field=path, repeatable")

	return cmd
}

func openUploadFiles(paths []string) ([]*os.File, []nexus.UploadAsset, error) {
	if len(paths) == 0 {
		return nil, nil, errors.New("no files to upload")
	}
	files := make([]*os.File, 0, len(paths))
	parts := make([]nexus.UploadAsset, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return files, nil, errors.Wrap(err, "failed to open upload file")
		}
		files = append(files, f)
		parts = append(parts, nexus.UploadAsset{FileName: filepath.Base(p), Content: f})
	}
	return files, parts, nil
}

func openUploadAssets(specs []string) ([]*os.File, []nexus.UploadAsset, error) {
	if len(specs) == 0 {
		return nil, nil, errors.New("no --asset given")
	}
	files := make([]*os.File, 0, len(specs))
	parts := make([]nexus.UploadAsset, 0, len(specs))
	for _, spec := range specs {
		field, p, ok := strings.Cut(spec, "=")
		if !ok || field == "" || p == "" {
			return files, nil, errors.Errorf("invalid --asset %q, expected field=path", spec)
		}
		f, err := os.Open(p)
		if err != nil {
			return files, nil, errors.Wrap(err, "failed to open upload file")
		}
		files = append(files, f)
		parts = append(parts, nexus.UploadAsset{Field: field, FileName: filepath.Base(p), Content: f})
	}
	return files, parts, nil
}
