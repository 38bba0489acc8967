package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/itemkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "empty" so a partial file only overrides
// what it mentions.
type JsonConfig struct {
	DataDir        *string `json:"data_dir"`
	Storage        *string `json:"storage"`
	UsersFile      *string `json:"users_file"`
	ItemsFile      *string `json:"items_file"`
	CategoriesFile *string `json:"categories_file"`
	SQLiteFile     *string `json:"sqlite_file"`
	LogLevel       *string `json:"log_level"`
	LogFormat      *string `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.JsonConfigFlags).
// Without it, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors; intended usage is
// defaults -> parseJson -> parseEnv -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.DataDir, jc.DataDir)
	set(&cfg.Storage, jc.Storage)
	set(&cfg.UsersFile, jc.UsersFile)
	set(&cfg.ItemsFile, jc.ItemsFile)
	set(&cfg.CategoriesFile, jc.CategoriesFile)
	set(&cfg.SQLiteFile, jc.SQLiteFile)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
