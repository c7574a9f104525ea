package cmdutil

import (
	"github.com/coding-wepack/nexusctl/pkg/nexus"
	"github.com/coding-wepack/nexusctl/pkg/settings"
)

// SearchQuery builds the query of the search flags.
func SearchQuery() (nexus.Query, error) {
	sort, err := nexus.ParseSort(settings.Sort)
	if err != nil {
		return nexus.Query{}, err
	}
	order, err := nexus.ParseOrder(settings.Order)
	if err != nil {
		return nexus.Query{}, err
	}

	return nexus.Query{
		Keyword:         settings.Keyword,
		Repository:      settings.Repository,
		Format:          settings.Format,
		Group:           settings.Group,
		Name:            settings.Name,
		Version:         settings.Version,
		MavenGroupID:    settings.MavenGroupID,
		MavenArtifactID: settings.MavenArtifactID,
		SortBy:          sort,
		OrderBy:         order,
	}, nil
}
