// Package config loads and persists the CLI configuration: session cookies,
// named accounts, and client tuning. The on-disk format is YAML under
// ~/.voycli managed through viper; the rest of the program only sees the
// Config struct.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Static errors for err113 compliance.
var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNotFound     = errors.New("account not found")
)

const (
	configDirName  = ".voycli"
	configFileName = "config"
	configFileType = "yml"

	dirPerm = 0o750
)

// Account holds the credentials of one named account. Either a direct
// cookie pair or a browser source to extract one from.
type Account struct {
	LiAt         string `mapstructure:"li_at"         yaml:"li_at,omitempty"`
	JSessionID   string `mapstructure:"jsessionid"    yaml:"jsessionid,omitempty"`
	CookieSource string `mapstructure:"cookie_source" yaml:"cookie_source,omitempty"`
}

// Config is the loaded configuration. LiAt/JSessionID at the top level are
// the legacy flat credentials kept for configs written before named
// accounts existed.
type Config struct {
	LiAt           string             `mapstructure:"li_at"          yaml:"li_at,omitempty"`
	JSessionID     string             `mapstructure:"jsessionid"     yaml:"jsessionid,omitempty"`
	CookieSource   string             `mapstructure:"cookie_source"  yaml:"cookie_source,omitempty"`
	TimeoutMS      int                `mapstructure:"timeout_ms"     yaml:"timeout_ms,omitempty"`
	DelayMS        int                `mapstructure:"delay_ms"       yaml:"delay_ms,omitempty"`
	Accounts       map[string]Account `mapstructure:"accounts"       yaml:"accounts,omitempty"`
	DefaultAccount string             `mapstructure:"default_account" yaml:"default_account,omitempty"`
}

// AccountNames returns the configured account names, sorted.
func (c *Config) AccountNames() []string {
	names := make([]string, 0, len(c.Accounts))
	for name := range c.Accounts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return dir, nil
}

// Load reads the configuration through viper. A missing config file is not
// an error; it yields an empty Config so credential resolution can fall
// through to its other sources.
func Load() (*Config, error) {
	var cfg Config

	err := viper.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	return &cfg, nil
}

// SaveAccount writes or updates a named account and persists the config.
func SaveAccount(name string, account Account) error {
	if name == "" {
		return ErrAccountNameRequired
	}

	accounts := viper.GetStringMap("accounts")
	if accounts == nil {
		accounts = map[string]any{}
	}

	accounts[name] = map[string]any{
		"li_at":         account.LiAt,
		"jsessionid":    account.JSessionID,
		"cookie_source": account.CookieSource,
	}
	viper.Set("accounts", accounts)

	if viper.GetString("default_account") == "" {
		viper.Set("default_account", name)
	}

	return write()
}

// RemoveAccount deletes a named account and persists the config.
func RemoveAccount(name string) error {
	accounts := viper.GetStringMap("accounts")
	if _, ok := accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}

	delete(accounts, name)
	viper.Set("accounts", accounts)

	if viper.GetString("default_account") == name {
		viper.Set("default_account", "")
	}

	return write()
}

// SetDefaultAccount marks a named account as the default and persists the
// config.
func SetDefaultAccount(name string) error {
	accounts := viper.GetStringMap("accounts")
	if _, ok := accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}

	viper.Set("default_account", name)

	return write()
}

func write() error {
	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	dir, err := Dir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, configFileName+"."+configFileType)
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
