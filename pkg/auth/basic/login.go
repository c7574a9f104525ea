package basic

import (
	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/auth"
	"github.com/coding-wepack/nexusctl/pkg/config"
)

func (c *Client) LoginWithOpts(options ...auth.LoginOption) error {
	settings := &auth.LoginSettings{}
	for _, option := range options {
		option(settings)
	}
	return c.login(settings)
}

func (c *Client) login(settings *auth.LoginSettings) error {
	if settings.Hostname == "" {
		return errors.New("server couldn't be empty")
	}
	if settings.Username == "" {
		return errors.New("username couldn't be empty")
	}
	if settings.Secret == "" {
		return errors.New("password couldn't be empty")
	}

	if err := c.verify(settings); err != nil {
		return err
	}

	// store to config file
	cred := config.AuthConfig{
		Username:      settings.Username,
		Password:      settings.Secret,
		ServerAddress: settings.Hostname,
	}

	return c.config.StoreAuth(cred)
}
