package basic

import (
	"context"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/auth"
	"github.com/coding-wepack/nexusctl/pkg/config"
	"github.com/coding-wepack/nexusctl/pkg/nexus"
)

// Verifier checks credentials against the server before they are stored.
type Verifier func(settings *auth.LoginSettings) error

// Client stores basic auth credentials in the nexusctl config file.
type Client struct {
	config *config.Config
	verify Verifier
}

// NewClient loads the config file at configPath, or the default one when it
// is empty. A nil verify uses VerifyWithNexus.
func NewClient(configPath string, verify Verifier) (*Client, error) {
	if verify == nil {
		verify = VerifyWithNexus
	}
	if configPath == "" {
		configPath = config.DefaultConfigFilePath()
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	return &Client{config: cfg, verify: verify}, nil
}

// Config returns the loaded configuration.
func (c *Client) Config() *config.Config {
	return c.config
}

// VerifyWithNexus lists the repositories of the server with the given
// credentials. Nexus answers 401 to bad credentials even on endpoints that
// allow anonymous access.
func VerifyWithNexus(settings *auth.LoginSettings) error {
	ctx := settings.Context
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := nexus.NewClient(settings.Hostname,
		nexus.ClientOptBasicAuth(settings.Username, settings.Secret),
		nexus.ClientOptInsecure(settings.Insecure),
		nexus.ClientOptLegacyPathFallback(settings.LegacyPath),
	)
	if err != nil {
		return err
	}

	if _, err = client.ListRepositories(ctx); err != nil {
		if nexus.IsUnauthorized(err) {
			return errors.New("unauthorized: incorrect username or password")
		}
		return errors.Wrapf(err, "failed to reach %s", settings.Hostname)
	}
	return nil
}
