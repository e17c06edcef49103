package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"warden/internal/backlog"
	"warden/internal/botapi"
	"warden/internal/platform/config"
	"warden/internal/platform/httpserver"
	"warden/internal/platform/logger"
	"warden/internal/platform/supervisor"
	"warden/internal/platform/tracing"
	"warden/internal/transport/bot"
	httptransport "warden/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// runService runs the bot until SIGINT or SIGTERM.
func runService(cctx *cli.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Log.Level, cfg.Log.AddSource)
	slog.SetDefault(log)

	shutdownTracing, err := tracing.Setup(ctx, "warden", versioninfo.Short())
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", "error", err)
		}
	}()

	svc, err := build(ctx, cfg, log, cctx.String("seed-file"))
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		svc.Close(sctx)
	}()

	me, err := svc.bot.GetMe(ctx)
	if err != nil {
		if botapi.CategoryOf(err) == botapi.CategoryUnauthorized {
			return fmt.Errorf("bot token rejected: %w", err)
		}
		log.WarnContext(ctx, "could not identify bot, continuing", "error", err)
	} else {
		log.InfoContext(ctx, "bot identified", "bot_id", me.ID, "username", me.Username)
	}

	dispatcher, err := bot.NewDispatcher(svc.decision, svc.scanner, svc.memberLog, svc.bot,
		bot.WithLogger(log),
		bot.WithMetrics(svc.metrics),
		bot.WithAdmins(cfg.Admin.UserIDs),
	)
	if err != nil {
		return err
	}
	poller, err := bot.NewPoller(svc.bot, dispatcher, cfg.Bot.PollTimeout,
		bot.WithPollerLogger(log),
		bot.WithSkipPending(cfg.Bot.SkipPendingUpdates),
	)
	if err != nil {
		return err
	}

	checks := map[string]httptransport.HealthCheck{"database": svc.db.PingContext}
	if svc.redis != nil {
		checks["redis"] = svc.redis.Health
	}
	router := httptransport.NewRouter(
		httptransport.NewHandler(svc.scanner, svc.groups, checks, log),
		httptransport.RouterConfig{Gatherer: svc.registry, AdminToken: cfg.Admin.Token, Logger: log},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sup := supervisor.New("poller", cfg.Bot.RestartDelay,
			supervisor.WithLogger(log),
			supervisor.WithMetrics(svc.metrics),
		)
		return sup.Run(gctx, poller.Run)
	})
	g.Go(func() error {
		return httpserver.Serve(gctx, httpserver.New(cfg.Admin.Addr, router), log)
	})
	g.Go(func() error {
		scheduleScans(gctx, svc.scanner, cfg.Scan, log)
		return nil
	})
	if svc.stream != nil {
		g.Go(func() error {
			return svc.stream.Run(gctx)
		})
	}

	log.InfoContext(ctx, "warden started",
		"version", versioninfo.Short(),
		"admin_addr", cfg.Admin.Addr,
		"database", cfg.Database.Driver,
	)
	err = g.Wait()
	dispatcher.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("warden stopped")
	return nil
}

// scheduleScans runs the startup scan and then one scan per interval until
// ctx is done. A zero interval disables periodic scans.
func scheduleScans(ctx context.Context, scanner *backlog.Scanner, cfg config.ScanConfig, log *slog.Logger) {
	if cfg.OnStart {
		scanner.ScanAll(ctx, backlog.TriggerStartup)
	}
	if cfg.Interval <= 0 {
		log.InfoContext(ctx, "periodic backlog scans disabled")
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scanner.ScanAll(ctx, backlog.TriggerInterval)
		}
	}
}
