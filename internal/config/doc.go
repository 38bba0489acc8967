// Package config loads runtime configuration for the itemkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with ITEMKEEPER_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   directory holding the stores
//	-s string   storage backend: file or sqlite
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_dir": ".",
//	  "storage": "file",
//	  "users_file": "users_info.txt",
//	  "items_file": "items.txt",
//	  "categories_file": "categories.txt",
//	  "sqlite_file": "itemkeeper.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Keys missing from the file keep their previous value.
package config
