package basic

import (
	"context"

	"github.com/coding-wepack/nexusctl/pkg/auth"
	"github.com/coding-wepack/nexusctl/pkg/config"
)

func (c *Client) Logout(ctx context.Context, hostname string) error {
	_, ok := c.config.Servers[config.NormalizeServer(hostname)]
	if !ok {
		return auth.ErrNotLoggedIn
	}

	return c.config.RemoveAuthConfig(hostname)
}
