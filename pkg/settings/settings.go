package settings

import (
	"strings"
	"time"
)

var (
	// Verbose is a flag for output more debug info.
	Verbose bool

	// Server is the Nexus base url, e.g. https://nexus.example.com.
	// Falls back to the current server of the config file.
	Server string

	// Insecure allow connections to TLS servers without certs
	Insecure bool

	// Username is username
	Username string

	// Password is password.
	Password string

	// PasswordFromStdin reads password from stdin if true.
	PasswordFromStdin bool

	// Output is the listing format, [table,json]
	Output string

	// Dir is where downloaded files are written.
	Dir string

	// FailFast will return error once occurred if true
	FailFast bool

	// DryRun lists what pull would download without downloading it.
	DryRun bool

	// MaxPages bounds paginated listings, 0 for no limit.
	MaxPages int

	// Timeout bounds every HTTP request, 0 for no limit.
	Timeout time.Duration

	// LegacyPath retries requests under the /nexus prefix on 404.
	LegacyPath bool

	// Repository limits listings and searches to one repository.
	Repository string

	// Search filters.
	Keyword         string
	Format          string
	Group           string
	Name            string
	Version         string
	MavenGroupID    string
	MavenArtifactID string
	Sort            string
	Order           string

	// FileName overrides the name of a searched and downloaded file.
	FileName string

	// Directory is the target directory of a raw upload.
	Directory string
)

func GetServer() string {
	return strings.TrimRight(strings.TrimSpace(Server), "/")
}
