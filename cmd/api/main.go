package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pageza/homechef/backend/config"
	"github.com/pageza/homechef/backend/internal/app"
	"github.com/pageza/homechef/backend/internal/logging"
	"github.com/pageza/homechef/backend/internal/server"
)

func main() {
	// stdout carries the stats and seed JSON
	gin.DefaultWriter = os.Stderr
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("homechef failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "homechef",
		Usage: "HomeChef marketplace dashboard API",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "override the mock data seed"},
			&cli.StringFlag{Name: "today", Usage: "override the reference date (YYYY-MM-DD)"},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "stats",
				Usage:  "print the admin stats for the seeded data as JSON",
				Action: printStats,
			},
			{
				Name:   "seed",
				Usage:  "seed the configured store and print what was loaded",
				Action: printSeed,
			},
		},
	}
}

// load reads the config and applies the global flags. Commands that print to
// stdout pass printing so gin stays in release mode.
func load(c *cli.Context, printing bool) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if config.GetEnvironment() != config.Development || printing {
		gin.SetMode(gin.ReleaseMode)
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("today") {
		cfg.Today = c.String("today")
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, nil, err
		}
	}
	return cfg, logging.New(cfg), nil
}

func serve(c *cli.Context) error {
	cfg, log, err := load(c, false)
	if err != nil {
		return err
	}

	a, err := app.Build(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.WithFields(logrus.Fields{
		"env":   config.GetEnvironment(),
		"store": cfg.StoreDriver,
		"today": cfg.ReferenceDate().Format(config.DateLayout),
	}).Info("starting homechef api")

	return server.New(cfg.Addr(), a.Router, log).Start(c.Context)
}

func printStats(c *cli.Context) error {
	cfg, log, err := load(c, true)
	if err != nil {
		return err
	}
	a, err := app.Build(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.Report.Render(c.Context)
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(append(doc, '\n'))
	return err
}

func printSeed(c *cli.Context) error {
	cfg, log, err := load(c, true)
	if err != nil {
		return err
	}
	a, err := app.Build(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	if a.Seeded == nil {
		log.Info("store already populated, nothing seeded")
		return enc.Encode(struct{}{})
	}
	return enc.Encode(a.Seeded)
}
