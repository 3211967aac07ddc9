package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/loginwidget/internal/cli"
	"github.com/dmitrijs2005/loginwidget/internal/config"
	"github.com/dmitrijs2005/loginwidget/internal/flagx"
)

func main() {

	args := os.Args[1:]
	cfg := config.LoadConfig(args)

	app, err := cli.NewApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Run(ctx, flagx.Positional(args, config.ValueFlags))
	stop()

	os.Exit(code)
}
