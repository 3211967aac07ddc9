// Package config loads runtime configuration for the widgetcheck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJSON).
//  3. The WIDGET_BOT_TOKEN environment variable, for the token only.
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-t string   bot token
//	-b string   bot name used for embed code
//	-o int      allowed auth_date offset (seconds)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-m string   write Prometheus metrics to this file on exit
//
// # JSON schema
//
//	{
//	  "bot_token": "123:ABC",
//	  "bot_name": "samplebot",
//	  "allowed_time_offset": "30s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "metrics_file": "/var/lib/node_exporter/widgetcheck.prom"
//	}
//
// allowed_time_offset is read with timex.Duration, so "30s" and integer
// nanoseconds are both accepted.
package config
