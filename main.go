package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/llehouerou/playtally/internal/app"
	"github.com/llehouerou/playtally/internal/config"
	"github.com/llehouerou/playtally/internal/errmsg"
	"github.com/llehouerou/playtally/internal/report"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed loading .env file: %v\n", err)
		os.Exit(1)
	}

	cliApp := cli.NewApp()
	cliApp.Name = "playtally"
	cliApp.Usage = "Load a small song catalog, record plays and print play statistics."
	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "extra config file, applied after the default locations",
			EnvVars: []string{"PLAYTALLY_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "today",
			Usage:   "date to treat as today (YYYY-MM-DD)",
			EnvVars: []string{"PLAYTALLY_TODAY"},
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "number of songs in the overall top list",
			EnvVars: []string{"PLAYTALLY_TOP_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "days",
			Usage:   "recency window for the not-played section",
			EnvVars: []string{"PLAYTALLY_RECENT_DAYS"},
		},
		&cli.BoolFlag{
			Name:  "skip-input",
			Usage: "do not read the demo number from stdin",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log progress to stderr",
		},
	}
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		_ = report.NewPrinter(os.Stderr, 0).Error(err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return errmsg.WrapWith(errmsg.OpConfigLoad, c.String("config"), err)
	}
	applyFlags(c, cfg)

	today, err := cfg.TodayAt(time.Now())
	if err != nil {
		return errmsg.Wrap(errmsg.OpDateResolve, err)
	}
	logger.Debug("starting", "today", today, "songs", len(cfg.GetSongs()))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = app.Run(ctx, app.Options{
		Config:    cfg,
		Today:     today,
		SkipInput: c.Bool("skip-input"),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Logger:    logger,
	})
	if err != nil {
		logger.Debug("demo stopped", "error", err)
	}
	return err
}

// applyFlags overrides config values with flags that were set explicitly.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("today") {
		cfg.Today = c.String("today")
	}
	if c.IsSet("limit") {
		cfg.Report.TopLimit = c.Int("limit")
	}
	if c.IsSet("days") {
		cfg.Report.RecentDays = c.Int("days")
	}
}
