// Package config provides configuration types and parsing for colmask.
package config

import (
	"fmt"
)

// DefaultPattern identifies common sensitive column name shapes.
const DefaultPattern = `\b(\w+_name|\w+_address|\w+_phone|\w+_email|\w+_id)\b`

// Config holds all configuration options for colmask.
type Config struct {
	InputFiles  []string
	OutputFiles []string
	Pattern     string
	Prefix      string
	Encoding    string
	IgnoreCase  bool
	MapOutput   string // CSV export path for the rename map
	MapDB       string // SQLite store path for cross-run consistency
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("match pattern must not be empty")
	}
	if len(c.InputFiles) == 0 {
		return fmt.Errorf("must specify at least one input")
	}
	if len(c.OutputFiles) != 0 && len(c.OutputFiles) != len(c.InputFiles) {
		return fmt.Errorf("number of output files (%d) must match number of input files (%d)",
			len(c.OutputFiles), len(c.InputFiles))
	}
	return nil
}

// OutputFor returns the output path paired with input i, or "" (stdout)
// when no outputs were configured.
func (c *Config) OutputFor(i int) string {
	if i < len(c.OutputFiles) {
		return c.OutputFiles[i]
	}
	return ""
}
