package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"warden/internal/backlog"
	"warden/internal/platform/config"
	"warden/internal/platform/logger"
	"warden/internal/registry/seed"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("fatal: %v", err)
	}

	app := &cli.App{
		Name:    "warden",
		Usage:   "moderates join requests across a federation of chat groups",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "seed-file",
				Usage:   "YAML group list to seed from instead of the built-in one",
				Value:   cfg.SeedFile,
				EnvVars: []string{"WARDEN_SEED_FILE"},
			},
		},
		Action: func(cctx *cli.Context) error {
			return runService(cctx, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "poll for updates, adjudicate join requests and serve the admin API",
				Action: func(cctx *cli.Context) error {
					return runService(cctx, cfg)
				},
			},
			{
				Name:  "scan",
				Usage: "adjudicate every pending join request once and exit",
				Action: func(cctx *cli.Context) error {
					return runScan(cctx, cfg)
				},
			},
			{
				Name:  "seed",
				Usage: "load the group list into the database",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "upsert the seed even when groups already exist",
					},
				},
				Action: func(cctx *cli.Context) error {
					return runSeed(cctx, cfg)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runScan(cctx *cli.Context, cfg config.Config) error {
	ctx := cctx.Context
	log := logger.New(cfg.Log.Level, cfg.Log.AddSource)

	svc, err := build(ctx, cfg, log, cctx.String("seed-file"))
	if err != nil {
		return err
	}
	defer svc.Close(ctx)

	summary := svc.scanner.ScanAll(ctx, backlog.TriggerCLI)
	enc := json.NewEncoder(cctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runSeed(cctx *cli.Context, cfg config.Config) error {
	ctx := cctx.Context
	log := logger.New(cfg.Log.Level, cfg.Log.AddSource)

	db, registrySvc, err := openRegistry(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	groups, err := seed.Load(cctx.String("seed-file"))
	if err != nil {
		return err
	}
	var n int
	if cctx.Bool("force") {
		n, err = registrySvc.Reseed(ctx, groups)
	} else {
		n, err = registrySvc.Bootstrap(ctx, groups)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "seeded %d groups\n", n)
	return nil
}
