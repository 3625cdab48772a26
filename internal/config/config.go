// Package config loads the devfile wizard configuration from flags, the
// environment and an optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. DEVFILE_ROOT.
	EnvPrefix = "DEVFILE"

	// FileName is the config file name searched for, without extension.
	FileName = "devfile-wizard"
)

// Config keys, shared with the CLI flag bindings.
const (
	KeyRoot          = "root"
	KeyLogLevel      = "log_level"
	KeyOpenAfterSave = "open_after_save"
	KeyViewerEditor  = "viewer.editor"
	KeyViewerStyle   = "viewer.style"
	KeyIdentityEnv   = "identity.env"
)

// Config is the resolved tool configuration.
type Config struct {
	Root          string         `mapstructure:"root"`
	LogLevel      string         `mapstructure:"log_level"`
	OpenAfterSave bool           `mapstructure:"open_after_save"`
	Viewer        ViewerConfig   `mapstructure:"viewer"`
	Identity      IdentityConfig `mapstructure:"identity"`
}

// ViewerConfig selects how written devfiles are shown.
type ViewerConfig struct {
	// Editor is an external command. Empty means the built-in terminal viewer.
	Editor string `mapstructure:"editor"`

	// Style is the chroma style of the terminal viewer.
	Style string `mapstructure:"style"`
}

// IdentityConfig lists the environment variables holding the workspace name.
type IdentityConfig struct {
	Env []string `mapstructure:"env"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOpenAfterSave, false)
	v.SetDefault(KeyViewerEditor, "")
	v.SetDefault(KeyViewerStyle, "monokai")
	v.SetDefault(KeyIdentityEnv, []string{"DEVWORKSPACE_NAME"})
}

// ConfigureViper sets up viper with the config file search paths.
// Config file: devfile-wizard.{yaml,toml,json}
// Search paths (in order): current directory, $XDG_CONFIG_HOME/devfile-wizard
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, FileName))
	}
}

// Load reads the configuration. A missing config file is not an error unless
// configPath names it explicitly. An empty root resolves to the working
// directory.
func Load(v *viper.Viper, configPath string) (Config, error) {
	SetDefaults(v)
	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return Config{}, err
	}
	cfg.Root = root

	return cfg, nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return wd, nil
	}
	if strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[2:])
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}
	return abs, nil
}
