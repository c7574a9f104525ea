package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/printer"
	"github.com/coding-wepack/nexusctl/pkg/settings"
)

// PreRun switches on debug logging for --verbose and checks the flags
// shared by every command.
func PreRun(cmd *cobra.Command, args []string) error {
	if settings.Verbose {
		// debug mode enable
		log.SetDebug()
	}
	return printer.ValidateFormat(settings.Output)
}

// AddOutputFlag registers -o/--output on a listing command.
func AddOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&settings.Output, "output", "o", printer.FormatTable, "Output format, one of: table, json")
}

// AddSearchFlags registers the search filters on cmd.
func AddSearchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&settings.Repository, "repository", "r", "", "Repository to search in")
	f.StringVarP(&settings.Keyword, "keyword", "q", "", "Keyword matched against names, groups and versions")
	f.StringVar(&settings.Format, "format", "", "Repository format, e.g. maven2, npm, raw")
	f.StringVar(&settings.Group, "group", "", "Component group")
	f.StringVar(&settings.Name, "name", "", "Component name")
	f.StringVar(&settings.Version, "version", "", "Component version")
	f.StringVar(&settings.MavenGroupID, "maven-group-id", "", "Maven groupId")
	f.StringVar(&settings.MavenArtifactID, "maven-artifact-id", "", "Maven artifactId")
	f.StringVar(&settings.Sort, "sort", "", "Sort by group, name, version or repository")
	f.StringVar(&settings.Order, "order", "", "Sort direction, asc or desc")
}
