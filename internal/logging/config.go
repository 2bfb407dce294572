package logging

import "fmt"

// Config holds logging-related configuration
type Config struct {
	File       string // Path to log file; empty logs to stdout only
	MaxSize    int    // Max size in MB
	MaxBackups int    // Number of backups to keep
	MaxAge     int    // Max age in days
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	if c.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be non-negative")
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("max_age must be non-negative")
	}
	return nil
}
