package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/freelancer-docs/internal/config"
	"github.com/freelancer-docs/internal/logging"
	"github.com/freelancer-docs/internal/server"
)

// @title			Freelancer Docs API
// @version		1.0
// @description	Document generation service for freelancers: invoices, NDAs and proposals, each with a live HTML preview and a PDF export.
// @BasePath		/
func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "freelancer-docs",
		Usage: "invoice, NDA and proposal generation service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Value:   cfg.Addr,
				Usage:   "address and port to run server",
			},
			&cli.StringFlag{
				Name:  "templates",
				Value: cfg.TemplatesDir,
				Usage: "page template directory",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "minimum log level (debug, info, warn, error)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg.Addr = c.String("addr")
			cfg.TemplatesDir = c.String("templates")
			cfg.LogLevel = c.String("log-level")

			logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, logger).Run(ctx)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
