package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/urfave/cli"
	"github.com/warpdl/chromecookies/cmd/common"
	"github.com/warpdl/chromecookies/internal/config"
	"github.com/warpdl/chromecookies/internal/cookies"
)

var getFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "format, f",
		Usage: "output format: object, header, curl, set-cookie or jar",
	},
	cli.StringFlag{
		Name:  "browser, b",
		Usage: "browser to read: " + strings.Join(cookies.BrowserIDs(), ", "),
	},
	cli.StringFlag{
		Name:  "profile, p",
		Usage: "browser profile directory name (default \"Default\")",
	},
	cli.StringFlag{
		Name:  "user-data-dir",
		Usage: "browser user data directory holding the profiles",
	},
	cli.StringFlag{
		Name:  "cookie-file, c",
		Usage: "read this cookie database instead of the profile's",
	},
	cli.IntFlag{
		Name:  "iterations, i",
		Usage: "override the PBKDF2 iteration count",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "log progress to stderr",
	},
	cli.StringFlag{
		Name:  "log-file",
		Usage: "append log output to this file",
	},
}

var (
	loadConfig  = config.Load
	platformFor = cookies.PlatformFor
	currentOS   = runtime.GOOS
)

// overrides collects the flags the user actually set, keyed like the
// config keys.
func overrides(ctx *cli.Context) map[string]any {
	out := make(map[string]any)
	for _, name := range []string{"format", "browser", "profile", "user-data-dir", "cookie-file", "log-file"} {
		if ctx.IsSet(name) {
			out[strings.ReplaceAll(name, "-", "_")] = ctx.String(name)
		}
	}
	if ctx.IsSet("iterations") {
		out["iterations"] = ctx.Int("iterations")
	}
	if ctx.IsSet("debug") {
		out["debug"] = ctx.Bool("debug")
	}
	return out
}

func get(ctx *cli.Context) error {
	uri := ctx.Args().First()
	if uri == "" {
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no url provided"),
		)
	} else if uri == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	uri = strings.TrimSpace(uri)

	cfg, err := loadConfig(overrides(ctx))
	if err != nil {
		return common.Fail(ctx, "get", "config", err)
	}
	format, err := cookies.ParseFormat(cfg.Format)
	if err != nil {
		return common.Fail(ctx, "get", "config", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return common.Fail(ctx, "get", "log", err)
	}
	defer log.Close()

	opts, err := cfg.PlatformOptions()
	if err != nil {
		return common.Fail(ctx, "get", "config", err)
	}
	platform, err := platformFor(currentOS, opts)
	if err != nil {
		return common.Fail(ctx, "get", "platform", err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := cookies.NewExtractor(platform, log).GetCookies(sigCtx, uri, format)
	if err != nil {
		log.Error("extraction failed: %v", err)
		return common.Fail(ctx, "get", "extract", err)
	}
	if err := writeResult(os.Stdout, result, uri); err != nil {
		return common.Fail(ctx, "get", "output", err)
	}
	return nil
}
