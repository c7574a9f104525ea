package config

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/docker/docker/pkg/homedir"
	"github.com/pkg/errors"
)

var (
	initConfigDir = new(sync.Once)
	configDir     string
	homeDir       string
)

const (
	DefaultConfigFileName = "config.json"
	configFileDir         = ".nexusctl"
	configDirEnv          = "NEXUSCTL_CONFIG"
)

// resetHomeDir is used in testing to reset the "homeDir" package variable to
// force re-lookup of the home directory between tests.
func resetHomeDir() {
	homeDir = ""
}

func GetHomeDir() string {
	if homeDir == "" {
		homeDir = homedir.Get()
	}
	return homeDir
}

// resetConfigDir is used in testing to reset the "configDir" package variable
// and its sync.Once to force re-lookup between tests.
func resetConfigDir() {
	configDir = ""
	initConfigDir = new(sync.Once)
}

func setConfigDir() {
	if configDir != "" {
		return
	}
	configDir = os.Getenv(configDirEnv)
	if configDir == "" {
		configDir = filepath.Join(GetHomeDir(), configFileDir)
	}
}

func DefaultConfigFilePath() string {
	return filepath.Join(Dir(), DefaultConfigFileName)
}

// Dir returns the directory the configuration file is stored in
func Dir() string {
	initConfigDir.Do(setConfigDir)
	return configDir
}

// LoadFromReader is a convenience function that creates a Config object from
// a reader
func LoadFromReader(configData io.Reader) (*Config, error) {
	configFile := New("")
	err := configFile.LoadFromReader(configData)
	return configFile, err
}

// Load reads the configuration file in the given directory. A missing file
// yields an empty configuration.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = Dir()
	}

	return LoadFile(filepath.Join(configDir, DefaultConfigFileName))
}

// LoadFile reads the configuration file at filename. A missing file yields
// an empty configuration bound to filename.
func LoadFile(filename string) (*Config, error) {
	configFile := New(filename)

	if file, err := os.Open(filename); err == nil {
		defer file.Close()
		err = configFile.LoadFromReader(file)
		if err != nil {
			err = errors.Wrap(err, filename)
		}
		return configFile, err
	} else if !os.IsNotExist(err) {
		// if file is there but we can't stat it for any reason other
		// than it doesn't exist then stop
		return configFile, errors.Wrap(err, filename)
	}

	return configFile, nil
}
