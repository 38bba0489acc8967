package config

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the itemkeeper CLI.
//
// Fields:
//   - DataDir: directory that holds every store.
//   - Storage: "file" (line-oriented text stores) or "sqlite".
//   - UsersFile / ItemsFile / CategoriesFile: store names inside DataDir
//     for the file backend.
//   - SQLiteFile: database name inside DataDir for the sqlite backend.
//   - LogLevel / LogFormat: slog level and handler (text or json).
type Config struct {
	DataDir        string `env:"DATA_DIR"`
	Storage        string `env:"STORAGE"`
	UsersFile      string `env:"USERS_FILE"`
	ItemsFile      string `env:"ITEMS_FILE"`
	CategoriesFile string `env:"CATEGORIES_FILE"`
	SQLiteFile     string `env:"SQLITE_FILE"`
	LogLevel       string `env:"LOG_LEVEL"`
	LogFormat      string `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults. The store names match
// the files written by earlier releases of the program.
func (c *Config) LoadDefaults() {
	c.DataDir = common.DefaultDataDir
	c.Storage = StorageFile
	c.UsersFile = "users_info.txt"
	c.ItemsFile = "items.txt"
	c.CategoriesFile = "categories.txt"
	c.SQLiteFile = "itemkeeper.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Path resolves a store name against DataDir.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
