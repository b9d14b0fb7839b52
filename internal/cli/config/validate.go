package config

import (
	"fmt"
	"strings"
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "json", "yaml", "markdown"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if !isOneOf(c.OutputFormat, OutputModes) {
		return fmt.Errorf("unknown output format %q\nHint: use one of %s", c.OutputFormat, strings.Join(OutputModes, ", "))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q\nHint: use debug, info, warn or error", c.LogLevel)
	}
	for i := range c.Dialects {
		if err := c.Dialects[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func isOneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
