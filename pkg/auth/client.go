package auth

import (
	"context"

	"github.com/pkg/errors"
)

// Common errors
var (
	ErrNotLoggedIn = errors.New("not logged in")
)

// Client provides authentication operations for Nexus servers.
type Client interface {
	// LoginWithOpts verifies the credentials against a server and stores
	// them on success.
	LoginWithOpts(options ...LoginOption) error
	// Logout forgets the credentials stored for a server.
	Logout(ctx context.Context, hostname string) error
}
