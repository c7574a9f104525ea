package action

import (
	"io"

	"github.com/pkg/errors"
)

// RegistryLogout forgets the credentials of a server.
type RegistryLogout struct {
	cfg *Configuration
}

// NewRegistryLogout creates a new RegistryLogout object with the given configuration.
func NewRegistryLogout(cfg *Configuration) *RegistryLogout {
	return &RegistryLogout{
		cfg: cfg,
	}
}

// Run removes the stored credentials of hostname, or of the current server
// when hostname is empty.
func (r *RegistryLogout) Run(out io.Writer, hostname string) error {
	if hostname == "" {
		configFile, err := r.cfg.RegistryClient.ConfigFile()
		if err != nil {
			return errors.Wrap(err, "failed to load config file")
		}
		if configFile.Current == "" {
			return ErrNoServer
		}
		hostname = configFile.Current
	}
	return r.cfg.RegistryClient.Logout(hostname)
}
