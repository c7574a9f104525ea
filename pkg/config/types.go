package config

type Config struct {
	Filename string `json:"-"` // Note: for internal use only

	// Current is the server used when a command gets no --server.
	Current string                `json:"current,omitempty"`
	Servers map[string]AuthConfig `json:"servers,omitempty"`
}

// AuthConfig contains authorization information for connecting to a Nexus server
type AuthConfig struct {
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	Auth          string `json:"auth,omitempty"`
	ServerAddress string `json:"serveraddress,omitempty"`
}
