// Package config provides shared configuration types for sqlsubstr.
// This package is decoupled from CLI concerns so that library users can load
// dialect rule files without pulling in cobra.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlsubstr/pkg/dialect"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// DialectConfig describes a custom dialect rule in a config file.
type DialectConfig struct {
	Name               string `koanf:"name"`
	Function           string `koanf:"function"`
	AllowNegativeStart bool   `koanf:"allow_negative_start"`
	StartShift         int64  `koanf:"start_shift"`
	Description        string `koanf:"description"`
}

// ToDialect converts the config entry into a registry dialect.
func (c *DialectConfig) ToDialect() *dialect.Dialect {
	return &dialect.Dialect{
		ID:          dialect.Custom,
		Name:        strings.ToLower(strings.TrimSpace(c.Name)),
		Description: c.Description,
		Rule: substr.Rule{
			FunctionName:       strings.TrimSpace(c.Function),
			AllowNegativeStart: c.AllowNegativeStart,
			StartShift:         c.StartShift,
		},
	}
}

// Validate checks if the dialect entry is usable.
func (c *DialectConfig) Validate() error {
	if err := c.ToDialect().Validate(); err != nil {
		return fmt.Errorf("invalid dialect entry %q: %w", c.Name, err)
	}
	return nil
}

// RegisterDialects validates every entry and registers it in the dialect registry.
// Entries are registered in order, so a later entry overrides an earlier one
// (and any built-in) with the same name.
func RegisterDialects(entries []DialectConfig) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}
	for i := range entries {
		if err := dialect.RegisterCustom(entries[i].ToDialect()); err != nil {
			return err
		}
	}
	return nil
}
