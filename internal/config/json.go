package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/loginwidget/internal/flagx"
	"github.com/dmitrijs2005/loginwidget/internal/timex"
)

// JSONConfig is the on-disk shape of the config file. Fields left out of the
// file keep their previous values.
type JSONConfig struct {
	BotToken          *string         `json:"bot_token"`
	BotName           *string         `json:"bot_name"`
	AllowedTimeOffset *timex.Duration `json:"allowed_time_offset"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	MetricsFile       *string         `json:"metrics_file"`
}

// parseJSON overlays cfg with the file named by -c/-config in args.
// It panics if the file cannot be read or decoded.
func parseJSON(cfg *Config, args []string) {
	path := flagx.JSONConfigFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BotToken, jc.BotToken)
	setString(&cfg.BotName, jc.BotName)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.MetricsFile, jc.MetricsFile)
	if jc.AllowedTimeOffset != nil {
		cfg.AllowedTimeOffset = jc.AllowedTimeOffset.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
