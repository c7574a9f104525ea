package action

import (
	"context"
	"io"

	"github.com/coding-wepack/nexusctl/pkg/registry"
)

type RegistryLogin struct {
	cfg *Configuration
}

func NewRegistryLogin(cfg *Configuration) *RegistryLogin {
	return &RegistryLogin{
		cfg: cfg,
	}
}

func (r *RegistryLogin) Run(ctx context.Context, out io.Writer, host, username, password string, insecure, legacyPath bool) error {
	return r.cfg.RegistryClient.Login(
		host,
		registry.LoginOptContext(ctx),
		registry.LoginOptBasicAuth(username, password),
		registry.LoginOptInsecure(insecure),
		registry.LoginOptLegacyPath(legacyPath),
	)
}
