package registry

import (
	"context"
	"fmt"
	"io"

	"github.com/coding-wepack/nexusctl/pkg/auth"
	"github.com/coding-wepack/nexusctl/pkg/auth/basic"
	"github.com/coding-wepack/nexusctl/pkg/config"
)

// Client manages the Nexus servers known to nexusctl.
type Client struct {
	// configFile is path to the config file.
	// e.g., $HOME/.nexusctl/config.json
	configFile string

	verbose bool

	out io.Writer

	authorizer auth.Client
}

// ClientOption allows specifying various settings configurable by the user for overriding the defaults
// used when creating a new default client
type ClientOption func(*Client)

// NewClient returns a new registry client with config
func NewClient(options ...ClientOption) (*Client, error) {
	client := &Client{out: io.Discard}
	for _, option := range options {
		option(client)
	}
	if client.configFile == "" {
		client.configFile = config.DefaultConfigFilePath()
	}

	return client, nil
}

func (c *Client) ConfigFilePath() string {
	return c.configFile
}

// ConfigFile loads the config file from disk. A missing file is an empty
// configuration.
func (c *Client) ConfigFile() (*config.Config, error) {
	return config.LoadFile(c.configFile)
}

// ClientOptVerbose returns a function that sets the debug setting on client options set
func ClientOptVerbose(verbose bool) ClientOption {
	return func(client *Client) {
		client.verbose = verbose
	}
}

// ClientOptWriter returns a function that sets the writer setting on client options set
func ClientOptWriter(out io.Writer) ClientOption {
	return func(client *Client) {
		client.out = out
	}
}

// ClientOptConfigFile returns a function that sets the credentialsFile setting on a client options set
func ClientOptConfigFile(configFile string) ClientOption {
	return func(client *Client) {
		client.configFile = configFile
	}
}

// ClientOptAuthorizer replaces the credential store, mostly for tests.
func ClientOptAuthorizer(authorizer auth.Client) ClientOption {
	return func(client *Client) {
		client.authorizer = authorizer
	}
}

type (
	// LoginOption allows specifying various settings on login
	LoginOption func(*loginOperation)

	loginOperation struct {
		ctx        context.Context
		username   string
		password   string
		insecure   bool
		legacyPath bool
	}
)

// Login verifies the credentials against host and stores them.
func (c *Client) Login(host string, options ...LoginOption) error {
	operation := &loginOperation{ctx: context.Background()}
	for _, option := range options {
		option(operation)
	}

	authorizerLoginOpts := []auth.LoginOption{
		auth.WithLoginContext(operation.ctx),
		auth.WithLoginHostname(host),
		auth.WithLoginUsername(operation.username),
		auth.WithLoginSecret(operation.password),
	}
	if operation.insecure {
		authorizerLoginOpts = append(authorizerLoginOpts, auth.WithLoginInsecure())
	}
	if operation.legacyPath {
		authorizerLoginOpts = append(authorizerLoginOpts, auth.WithLoginLegacyPath())
	}

	if err := c.ensureAuthorizer(); err != nil {
		return err
	}
	if err := c.authorizer.LoginWithOpts(authorizerLoginOpts...); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.out, "Login Succeeded")

	return nil
}

// LoginOptContext returns a function that sets the context of the credential check
func LoginOptContext(ctx context.Context) LoginOption {
	return func(operation *loginOperation) {
		operation.ctx = ctx
	}
}

// LoginOptBasicAuth returns a function that sets the username/password settings on login
func LoginOptBasicAuth(username string, password string) LoginOption {
	return func(operation *loginOperation) {
		operation.username = username
		operation.password = password
	}
}

// LoginOptInsecure returns a function that sets the insecure setting on login
func LoginOptInsecure(insecure bool) LoginOption {
	return func(operation *loginOperation) {
		operation.insecure = insecure
	}
}

// LoginOptLegacyPath returns a function that enables the /nexus prefix fallback on login
func LoginOptLegacyPath(legacyPath bool) LoginOption {
	return func(operation *loginOperation) {
		operation.legacyPath = legacyPath
	}
}

// Logout removes the credentials stored for host
func (c *Client) Logout(host string) error {
	if err := c.ensureAuthorizer(); err != nil {
		return err
	}

	if err := c.authorizer.Logout(context.Background(), host); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.out, "Removing login credentials for %s\n", host)

	return nil
}

func (c *Client) ensureAuthorizer() error {
	if c.authorizer != nil {
		return nil
	}
	authorizer, err := basic.NewClient(c.configFile, nil)
	if err != nil {
		return err
	}
	c.authorizer = authorizer
	return nil
}
