package config

import (
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/util/jsonutil"
)

func New(fn string) *Config {
	return &Config{
		Filename: fn,
		Servers:  map[string]AuthConfig{},
	}
}

// LoadFromReader reads the configuration data given and sets up the auth config
// information with given directory and populates the receiver object
func (c *Config) LoadFromReader(r io.Reader) error {
	var err error
	if err = jsonutil.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if c.Servers == nil {
		c.Servers = map[string]AuthConfig{}
	}
	for addr, ac := range c.Servers {
		if ac.Auth != "" {
			ac.Username, ac.Password, err = decodeAuth(ac.Auth)
			if err != nil {
				return errors.Wrapf(err, "server %s", addr)
			}
		}
		ac.Auth = ""
		ac.ServerAddress = addr
		c.Servers[addr] = ac
	}
	return nil
}

// GetFilename returns the file name that this config file is based on.
func (c *Config) GetFilename() string {
	return c.Filename
}

// GetAllAuthConfigs returns the mapping of server to auth configuration
func (c *Config) GetAllAuthConfigs() map[string]AuthConfig {
	return c.Servers
}

// GetAuthConfig returns the credentials stored for serverAddress. An entry
// stored under another scheme or path of the same host also matches.
func (c *Config) GetAuthConfig(serverAddress string) (AuthConfig, bool) {
	serverAddress = NormalizeServer(serverAddress)
	if authConfig, ok := c.Servers[serverAddress]; ok {
		return authConfig, true
	}

	host := ConvertToHostname(serverAddress)
	for r, ac := range c.Servers {
		if host == ConvertToHostname(r) {
			return ac, true
		}
	}
	return AuthConfig{}, false
}

// CurrentAuthConfig returns the credentials of the current server.
func (c *Config) CurrentAuthConfig() (AuthConfig, bool) {
	if c.Current == "" {
		return AuthConfig{}, false
	}
	return c.GetAuthConfig(c.Current)
}

// StoreAuth saves authConfig and makes its server the current one.
func (c *Config) StoreAuth(authConfig AuthConfig) error {
	authConfig.ServerAddress = NormalizeServer(authConfig.ServerAddress)
	if authConfig.ServerAddress == "" {
		return errors.New("server address is required")
	}
	c.Servers[authConfig.ServerAddress] = authConfig
	c.Current = authConfig.ServerAddress
	return c.Save()
}

func (c *Config) RemoveAuthConfig(serverAddress string) error {
	serverAddress = NormalizeServer(serverAddress)
	if _, ok := c.Servers[serverAddress]; !ok {
		return errors.Errorf("not logged in to %s", serverAddress)
	}
	delete(c.Servers, serverAddress)
	if c.Current == serverAddress {
		c.Current = ""
	}
	return c.Save()
}

// SaveToWriter encodes and writes out all the authorization information to
// the given writer
func (c *Config) SaveToWriter(w io.Writer) error {
	// Encode sensitive data into a new/temp struct
	tmpAuthConfigs := make(map[string]AuthConfig, len(c.Servers))
	for k, authConfig := range c.Servers {
		authCopy := authConfig
		// encode and save the authstring, while blanking out the original fields
		authCopy.Auth = encodeAuth(&authCopy)
		authCopy.Username = ""
		authCopy.Password = ""
		authCopy.ServerAddress = ""
		tmpAuthConfigs[k] = authCopy
	}

	saveAuthConfigs := c.Servers
	c.Servers = tmpAuthConfigs
	defer func() { c.Servers = saveAuthConfigs }()

	data, err := jsonutil.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save encodes and writes out all the authorization information
func (c *Config) Save() (retErr error) {
	if c.Filename == "" {
		return errors.Errorf("Can't save config with empty filename")
	}

	dir := filepath.Dir(c.Filename)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	temp, err := os.CreateTemp(dir, filepath.Base(c.Filename))
	if err != nil {
		return err
	}
	defer func() {
		_ = temp.Close()
		if retErr != nil {
			if err := os.Remove(temp.Name()); err != nil {
				log.Debug("Error cleaning up temp file",
					logfields.String("file", temp.Name()),
					logfields.Error(err))
			}
		}
	}()

	err = c.SaveToWriter(temp)
	if err != nil {
		return err
	}

	if err := temp.Close(); err != nil {
		return errors.Wrap(err, "error closing temp file")
	}

	// Handle situation where the configfile is a symlink
	cfgFile := c.Filename
	if f, err := os.Readlink(cfgFile); err == nil {
		cfgFile = f
	}

	copyFilePermissions(cfgFile, temp.Name())
	return os.Rename(temp.Name(), cfgFile)
}

// copyFilePermissions keeps the mode of an existing config file. The file
// holds credentials, so a fresh one is readable by its owner only.
func copyFilePermissions(src, dst string) {
	mode := os.FileMode(0600)
	if fi, err := os.Stat(src); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(dst, mode); err != nil {
		log.Debug("Error setting config file permissions",
			logfields.String("file", dst),
			logfields.Error(err))
	}
}

// encodeAuth creates a base64 encoded string to containing authorization information
func encodeAuth(authConfig *AuthConfig) string {
	if authConfig.Username == "" && authConfig.Password == "" {
		return ""
	}

	authStr := authConfig.Username + ":" + authConfig.Password
	msg := []byte(authStr)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(msg)))
	base64.StdEncoding.Encode(encoded, msg)
	return string(encoded)
}

// decodeAuth decodes a base64 encoded string and returns username and password
func decodeAuth(authStr string) (string, string, error) {
	if authStr == "" {
		return "", "", nil
	}

	decLen := base64.StdEncoding.DecodedLen(len(authStr))
	decoded := make([]byte, decLen)
	authByte := []byte(authStr)
	n, err := base64.StdEncoding.Decode(decoded, authByte)
	if err != nil {
		return "", "", err
	}
	if n > decLen {
		return "", "", errors.Errorf("Something went wrong decoding auth config")
	}
	arr := strings.SplitN(string(decoded[:n]), ":", 2)
	if len(arr) != 2 {
		return "", "", errors.Errorf("Invalid auth configuration file")
	}
	password := strings.Trim(arr[1], "\x00")
	return arr[0], password, nil
}

// NormalizeServer trims blanks and trailing slashes so that the same server
// typed two ways maps to one entry.
func NormalizeServer(server string) string {
	return strings.TrimRight(strings.TrimSpace(server), "/")
}

// ConvertToHostname converts a server url which has http|https prepended
// to just an hostname.
func ConvertToHostname(url string) string {
	stripped := url
	if strings.HasPrefix(url, "http://") {
		stripped = strings.TrimPrefix(url, "http://")
	} else if strings.HasPrefix(url, "https://") {
		stripped = strings.TrimPrefix(url, "https://")
	}

	nameParts := strings.SplitN(stripped, "/", 2)

	return nameParts[0]
}
