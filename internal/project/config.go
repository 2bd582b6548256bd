// Package project holds the project-level configuration for djinit: where the
// generated tree lives, which files the auto-update step is allowed to touch,
// where backups go, and which application names are off limits.
//
// All of it is carried in an explicit Config value that commands pass down to
// the other packages, so tests can substitute temporary directories or an
// alternate reserved-name set without touching globals.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Role identifies which configuration file a backup or mutation targets.
// The two roles are independent: each has its own backup directory and its
// own insertion logic.
type Role string

const (
	// RoleSettings is the application-registry file (INSTALLED_APPS in
	// config/settings/base.py).
	RoleSettings Role = "settings"

	// RoleURLs is the URL-routing file (urlpatterns in config/urls.py).
	RoleURLs Role = "urls"
)

// Roles lists all known configuration-file roles in restore order.
var Roles = []Role{RoleSettings, RoleURLs}

// ConfigFileName is the optional per-project override file read from the
// project root.
const ConfigFileName = ".djinit.yaml"

// Config describes one djinit-managed project.
type Config struct {
	// Root is the project directory (contains manage.py, config/, apps/).
	Root string

	// SettingsPath is the application-registry file, relative to Root.
	SettingsPath string `mapstructure:"settings_path"`

	// URLsPath is the URL-routing file, relative to Root.
	URLsPath string `mapstructure:"urls_path"`

	// BackupRoot is the directory that holds the per-role backup
	// subdirectories, relative to Root.
	BackupRoot string `mapstructure:"backup_root"`

	// HistoryDB is the sqlite audit-log path, relative to Root.
	HistoryDB string `mapstructure:"history_db"`

	// ReservedApps are application names rejected at the CLI boundary
	// because they collide with framework builtins. Matched
	// case-insensitively.
	ReservedApps []string `mapstructure:"reserved_apps"`

	// DefaultApps are scaffolded by `init` when no -a flag is given.
	DefaultApps []string `mapstructure:"default_apps"`
}

// Default returns the stock configuration for a project rooted at root.
func Default(root string) *Config {
	return &Config{
		Root:         root,
		SettingsPath: filepath.Join("config", "settings", "base.py"),
		URLsPath:     filepath.Join("config", "urls.py"),
		BackupRoot:   filepath.Join("config", "app_append_backups"),
		HistoryDB:    filepath.Join(".djinit", "history.db"),
		ReservedApps: []string{
			"admin",
			"auth",
			"contenttypes",
			"sessions",
			"messages",
			"staticfiles",
		},
		DefaultApps: []string{"main"},
	}
}

// Load returns the configuration for the project at root, applying overrides
// from .djinit.yaml when the file exists. A missing override file is not an
// error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := Default(root)

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// FileForRole returns the absolute path of the live configuration file for
// the given role.
func (c *Config) FileForRole(role Role) (string, error) {
	switch role {
	case RoleSettings:
		return filepath.Join(c.Root, c.SettingsPath), nil
	case RoleURLs:
		return filepath.Join(c.Root, c.URLsPath), nil
	default:
		return "", fmt.Errorf("unknown configuration role %q", role)
	}
}

// BackupDir returns the backup directory for the given role. The directory
// names match the layout the scaffolder documents in the generated guide
// (base_backups for settings, urls_backups for URL routing).
func (c *Config) BackupDir(role Role) (string, error) {
	switch role {
	case RoleSettings:
		return filepath.Join(c.Root, c.BackupRoot, "base_backups"), nil
	case RoleURLs:
		return filepath.Join(c.Root, c.BackupRoot, "urls_backups"), nil
	default:
		return "", fmt.Errorf("unknown configuration role %q", role)
	}
}

// HistoryDBPath returns the absolute path of the audit database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Root, c.HistoryDB)
}
