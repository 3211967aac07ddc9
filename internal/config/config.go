package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/common"
)

// Config holds runtime settings for the widgetcheck CLI.
//
// Fields:
//   - BotToken: secret the widget payloads are signed with. Never logged.
//   - BotName: bot username used when rendering embed code.
//   - AllowedTimeOffset: freshness window for auth_date.
//   - LogLevel / LogFormat: slog handler settings.
//   - MetricsFile: Prometheus textfile written on exit; empty disables it.
type Config struct {
	BotToken          string
	BotName           string
	AllowedTimeOffset time.Duration
	LogLevel          string
	LogFormat         string
	MetricsFile       string
}

// LoadDefaults populates c with defaults. There is no default token.
func (c *Config) LoadDefaults() {
	c.BotName = "samplebot"
	c.AllowedTimeOffset = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MetricsFile = ""
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and finally the flags in args (usually os.Args[1:]).
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// parseEnv reads the token from the environment if it is set.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(common.TokenEnvVar); ok && v != "" {
		cfg.BotToken = v
	}
}
