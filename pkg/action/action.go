package action

import (
	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/config"
	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/nexus"
	"github.com/coding-wepack/nexusctl/pkg/registry"
	"github.com/coding-wepack/nexusctl/pkg/settings"
)

// ErrNoServer is returned when neither --server nor a current login names a
// server.
var ErrNoServer = errors.New("no server given: pass --server or run `nexusctl login` first")

type Configuration struct {
	// RegistryClient is a client for working with stored servers and credentials
	RegistryClient *registry.Client
}

// ResolveAuth picks the server and credentials of a command: flags first,
// then what `nexusctl login` stored.
func (cfg *Configuration) ResolveAuth() (config.AuthConfig, error) {
	configFile, err := cfg.RegistryClient.ConfigFile()
	if err != nil {
		return config.AuthConfig{}, errors.Wrap(err, "failed to load config file")
	}

	server := settings.GetServer()
	if server == "" {
		server = configFile.Current
	}
	if server == "" {
		return config.AuthConfig{}, ErrNoServer
	}

	ac := config.AuthConfig{ServerAddress: server}
	if stored, ok := configFile.GetAuthConfig(server); ok {
		ac.Username = stored.Username
		ac.Password = stored.Password
	}
	if settings.Username != "" {
		ac.Username = settings.Username
	}
	if settings.Password != "" {
		ac.Password = settings.Password
	}

	log.Debug("Resolved server",
		logfields.String("server", ac.ServerAddress),
		logfields.String("username", ac.Username))

	return ac, nil
}

// NexusClient builds a client from the resolved server and the global flags.
func (cfg *Configuration) NexusClient() (*nexus.Client, error) {
	ac, err := cfg.ResolveAuth()
	if err != nil {
		return nil, err
	}

	opts := []nexus.ClientOption{
		nexus.ClientOptInsecure(settings.Insecure),
		nexus.ClientOptTimeout(settings.Timeout),
		nexus.ClientOptMaxPages(settings.MaxPages),
		nexus.ClientOptLegacyPathFallback(settings.LegacyPath),
	}
	if ac.Username != "" || ac.Password != "" {
		opts = append(opts, nexus.ClientOptBasicAuth(ac.Username, ac.Password))
	}

	return nexus.NewClient(ac.ServerAddress, opts...)
}
