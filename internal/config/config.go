// Package config holds runtime settings for the document service.
package config

// Config holds runtime settings.
//
// Fields:
//   - Addr: HTTP bind address.
//   - TemplatesDir: directory holding the page templates.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	Addr         string
	TemplatesDir string
	LogLevel     string
}

// LoadDefaults populates Config with development defaults. Flags set on the
// CLI override these.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.TemplatesDir = "templates"
	c.LogLevel = "info"
}

// Load builds a Config with defaults applied.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}
