package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/flagx"
	"github.com/dmitrijs2005/loginwidget/internal/timex"
)

// ValueFlags lists the flags that take a value, including -c/-config. The CLI
// uses it to find positional arguments.
var ValueFlags = []string{"-c", "-config", "-t", "-b", "-o", "-l", "-f", "-m"}

// parseFlags populates cfg from the flags in args. Unknown flags and
// positional arguments are filtered out first. It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-t", "-b", "-o", "-l", "-f", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BotToken, "t", cfg.BotToken, "bot token")
	fs.StringVar(&cfg.BotName, "b", cfg.BotName, "bot name for embed code")
	offset := fs.Int64("o", int64(cfg.AllowedTimeOffset/time.Second), "allowed auth_date offset (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")
	fs.StringVar(&cfg.MetricsFile, "m", cfg.MetricsFile, "Prometheus textfile path")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			d, err := timex.Seconds(*offset)
			if err != nil {
				panic(err)
			}
			cfg.AllowedTimeOffset = d
		}
	})
}
