package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/loginwidget/internal/common"
	"github.com/dmitrijs2005/loginwidget/internal/config"
	"github.com/dmitrijs2005/loginwidget/internal/logging"
	"github.com/dmitrijs2005/loginwidget/internal/loginwidget"
	"github.com/dmitrijs2005/loginwidget/internal/metrics"
)

// App is the widgetcheck command-line application.
type App struct {
	config  *config.Config
	auth    *loginwidget.Authenticator
	logger  logging.Logger
	metrics *metrics.Recorder
	in      io.Reader
	out     io.Writer
}

// NewApp wires the authenticator, logger and metrics for cfg. Command output
// goes to out and logs to logOut. If cfg has no token it is read from the
// terminal.
func NewApp(cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	token := cfg.BotToken
	if token == "" {
		if token, err = GetToken(out); err != nil {
			return nil, err
		}
	}

	auth, err := loginwidget.New(token, loginwidget.WithAllowedTimeOffset(cfg.AllowedTimeOffset))
	if err != nil {
		return nil, fmt.Errorf("init authenticator: %w", err)
	}

	return &App{
		config:  cfg,
		auth:    auth,
		logger:  logger,
		metrics: metrics.NewRecorder(),
		in:      in,
		out:     out,
	}, nil
}

// Run executes args as a single command, or starts the interactive loop when
// args is empty. It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.Close(ctx)

	if len(args) == 0 {
		runREPL(ctx, a, bufio.NewScanner(a.in), a.out)
		return 0
	}

	res, err := a.Exec(ctx, args)
	if err != nil {
		a.logger.Error(ctx, "command failed", "command", args[0], "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return 2
	}
	if args[0] == "check" && res != loginwidget.Valid {
		return 1
	}
	return 0
}

// Close flushes metrics to the configured textfile and wipes the key.
func (a *App) Close(ctx context.Context) {
	if a.config.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(a.config.MetricsFile); err != nil {
			a.logger.Warn(ctx, "write metrics", "path", a.config.MetricsFile, "error", err)
		}
	}
	_ = a.auth.Close()
}

// Exec runs one command. The returned Authorization is only meaningful for
// check.
func (a *App) Exec(ctx context.Context, args []string) (loginwidget.Authorization, error) {
	switch args[0] {
	case "check":
		if len(args) != 2 {
			return loginwidget.InvalidHash, fmt.Errorf("%w: check <query>", common.ErrUsage)
		}
		return a.Check(ctx, args[1])

	case "sign":
		if len(args) != 2 {
			return loginwidget.InvalidHash, fmt.Errorf("%w: sign <query>", common.ErrUsage)
		}
		return loginwidget.InvalidHash, a.Sign(ctx, args[1])

	case "embed":
		return loginwidget.InvalidHash, a.Embed(ctx, args[1:])

	case "offset":
		if len(args) != 2 {
			return loginwidget.InvalidHash, fmt.Errorf("%w: offset <seconds>", common.ErrUsage)
		}
		return loginwidget.InvalidHash, a.SetOffset(ctx, args[1])

	case "help":
		a.Help()
		return loginwidget.InvalidHash, nil

	default:
		return loginwidget.InvalidHash, fmt.Errorf("%w: %q", common.ErrUnknownCommand, args[0])
	}
}

// Help prints the list of commands.
func (a *App) Help() {
	fmt.Fprintln(a.out, "Available commands: check <query>, sign <query>, embed callback <func> <param>, embed redirect <url>, offset <seconds>, help, exit")
}
