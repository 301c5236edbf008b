// Package di provides a configuration document module for the Fx DI container.
package di

import (
	"errors"

	conf "github.com/0xalexb/hjarta-conf"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyPath is returned when the configuration file path is empty.
var ErrEmptyPath = errors.New("configuration path must not be empty")

// Config holds the configuration for a document module.
type Config struct {
	Path    string
	BaseDir string
	MaxSize int64
	Parse   []conf.Option
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	return nil
}
