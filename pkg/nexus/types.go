package nexus

// Repository describes a repository configured on the server.
type Repository struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Type   string `json:"type"`
	URL    string `json:"url"`
	Online bool   `json:"online,omitempty"`
}

// Asset is a single retrievable file. DownloadURL is the authoritative
// location to fetch it from.
type Asset struct {
	ID          string            `json:"id"`
	Path        string            `json:"path"`
	Repository  string            `json:"repository"`
	Format      string            `json:"format"`
	DownloadURL string            `json:"downloadUrl"`
	Checksum    map[string]string `json:"checksum,omitempty"`
	ContentType string            `json:"contentType,omitempty"`
	FileSize    int64             `json:"fileSize,omitempty"`
}

// Component is a versioned artifact owning zero or more assets.
type Component struct {
	ID         string  `json:"id"`
	Repository string  `json:"repository"`
	Format     string  `json:"format"`
	Group      string  `json:"group"`
	Name       string  `json:"name"`
	Version    string  `json:"version"`
	Assets     []Asset `json:"assets"`
}

// Page is one server response of a paginated endpoint. An empty
// ContinuationToken marks the last page.
type Page[T any] struct {
	Items             []T    `json:"items"`
	ContinuationToken string `json:"continuationToken,omitempty"`
}

// HasMore reports whether another page can be requested with
// ContinuationToken.
func (p *Page[T]) HasMore() bool {
	return p != nil && p.ContinuationToken != ""
}
