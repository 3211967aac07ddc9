package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/common"
	"github.com/dmitrijs2005/loginwidget/internal/embed"
	"github.com/dmitrijs2005/loginwidget/internal/loginwidget"
	"github.com/dmitrijs2005/loginwidget/internal/timex"
	"github.com/google/uuid"
)

// Check verifies the payload in query and prints the outcome. For a valid
// payload the decoded user is printed as JSON as well.
func (a *App) Check(ctx context.Context, query string) (loginwidget.Authorization, error) {
	log := a.logger.With("check_id", uuid.NewString())

	fields, err := loginwidget.ParseQuery(queryPart(query))
	if err != nil {
		return loginwidget.InvalidHash, err
	}

	start := time.Now()
	res, err := a.auth.CheckAuthorization(fields)
	took := time.Since(start)
	if err != nil {
		return res, err
	}
	a.metrics.Observe(res, took)

	log.Info(ctx, "check finished", "outcome", res, "fields", len(fields), "took", took)
	fmt.Fprintln(a.out, "outcome:", res)

	if res != loginwidget.Valid {
		return res, nil
	}

	user, err := fields.User()
	if err != nil {
		log.Warn(ctx, "payload is valid but user does not decode", "error", err)
		return res, nil
	}
	b, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return res, err
	}
	fmt.Fprintln(a.out, string(b))
	return res, nil
}

// Sign prints the hash the widget would attach to the fields in query.
func (a *App) Sign(ctx context.Context, query string) error {
	fields, err := loginwidget.ParseQuery(queryPart(query))
	if err != nil {
		return err
	}

	hash, err := a.auth.Sign(fields)
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "signed fields", "fields", len(fields))

	fmt.Fprintln(a.out, hash)
	return nil
}

// Embed prints widget embed code for the configured bot name.
//
//	embed callback <func> <param>
//	embed redirect <url>
func (a *App) Embed(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: embed callback|redirect ...", common.ErrUsage)
	}

	var code string
	switch {
	case args[0] == "callback" && len(args) == 3:
		code = embed.CallbackEmbedCode(a.config.BotName, args[1], args[2])
	case args[0] == "redirect" && len(args) == 2:
		code = embed.RedirectEmbedCode(a.config.BotName, args[1])
	default:
		return fmt.Errorf("%w: embed callback <func> <param> | embed redirect <url>", common.ErrUsage)
	}

	a.logger.Debug(ctx, "rendered embed code", "mode", args[0], "bot", a.config.BotName)
	fmt.Fprintln(a.out, code)
	return nil
}

// SetOffset changes the allowed auth_date offset, given in seconds.
func (a *App) SetOffset(ctx context.Context, arg string) error {
	secs, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: offset must be an integer number of seconds", common.ErrUsage)
	}

	d, err := timex.Seconds(secs)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUsage, err)
	}
	a.auth.SetAllowedTimeOffset(d)
	a.logger.Info(ctx, "allowed time offset changed", "offset", d)
	fmt.Fprintln(a.out, "offset:", d)
	return nil
}
