package config

// Default configuration values.
const (
	DefaultDialect     = "oracle"
	DefaultBufferSize  = 1024
	DefaultConcurrency = 4
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "info"
)

// ApplyDefaults fills unset fields of a DialectConfig.
func ApplyDefaults(c *DialectConfig) {
	if c == nil {
		return
	}
	if c.Description == "" {
		c.Description = "custom dialect"
	}
}
