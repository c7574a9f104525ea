package nexus

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/util/restyutil"
)

type Sort string

const (
	SortGroup      Sort = "GROUP"
	SortName       Sort = "NAME"
	SortVersion    Sort = "VERSION"
	SortRepository Sort = "REPOSITORY"
)

type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// ParseSort accepts any letter case. An empty string yields the zero Sort.
func ParseSort(s string) (Sort, error) {
	switch sort := Sort(strings.ToUpper(strings.TrimSpace(s))); sort {
	case "", SortGroup, SortName, SortVersion, SortRepository:
		return sort, nil
	default:
		return "", errors.Errorf("unknown sort %q, expected one of group, name, version, repository", s)
	}
}

// ParseOrder accepts any letter case. An empty string yields the zero Order.
func ParseOrder(s string) (Order, error) {
	switch order := Order(strings.ToUpper(strings.TrimSpace(s))); order {
	case "", OrderAsc, OrderDesc:
		return order, nil
	default:
		return "", errors.Errorf("unknown order %q, expected asc or desc", s)
	}
}

// Query holds the search filters shared by asset and component searches.
// Zero-valued fields are not sent.
type Query struct {
	Keyword         string
	Repository      string
	Format          string
	Group           string
	Name            string
	Version         string
	MavenGroupID    string
	MavenArtifactID string
	SortBy          Sort
	OrderBy         Order
}

// Values serializes the query the way the search endpoints expect it,
// with sort and direction lower-cased.
func (q Query) Values() url.Values {
	return restyutil.QueryValues(map[string]string{
		"sort":             strings.ToLower(string(q.SortBy)),
		"direction":        strings.ToLower(string(q.OrderBy)),
		"q":                q.Keyword,
		"repository":       q.Repository,
		"format":           q.Format,
		"group":            q.Group,
		"name":             q.Name,
		"version":          q.Version,
		"maven.groupId":    q.MavenGroupID,
		"maven.artifactId": q.MavenArtifactID,
	})
}

// IsEmpty reports whether no filter is set.
func (q Query) IsEmpty() bool {
	return len(q.Values()) == 0
}
