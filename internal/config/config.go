// Package config loads ambient environment configuration: an optional
// .env file (joho/godotenv, grounded on mutagen-io-mutagen's direct
// dependency) plus the two environment variables spec §6 names.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file if one is present in the working directory.
// A missing file is not an error. godotenv.Load itself reports a missing
// file as an error, so existence is checked first; a malformed (present
// but unparsable) file is still surfaced to the caller.
func Load() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// HashEnabled reports whether ENABLE_HASH permits hashing. Falsy values
// are "false", "0", "no" (case-insensitive); unset defaults to enabled.
func HashEnabled() bool {
	v, ok := os.LookupEnv("ENABLE_HASH")
	if !ok {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

// OutputDir returns the default output root: OUTPUT_DIR if set, else
// the user's home directory.
func OutputDir() string {
	if v, ok := os.LookupEnv("OUTPUT_DIR"); ok && v != "" {
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "~"
}
