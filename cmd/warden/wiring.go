package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"warden/internal/backlog"
	backlogadapters "warden/internal/backlog/adapters"
	backlogmetrics "warden/internal/backlog/metrics"
	"warden/internal/botapi"
	"warden/internal/decision"
	decisionadapters "warden/internal/decision/adapters"
	decisionmetrics "warden/internal/decision/metrics"
	decisionstore "warden/internal/decision/store"
	"warden/internal/eventlog"
	eventlogmetrics "warden/internal/eventlog/metrics"
	eventlogstore "warden/internal/eventlog/store"
	"warden/internal/eventlog/stream"
	"warden/internal/membership"
	membershipadapters "warden/internal/membership/adapters"
	"warden/internal/membership/cache"
	membershipmetrics "warden/internal/membership/metrics"
	"warden/internal/platform/config"
	"warden/internal/platform/database"
	"warden/internal/platform/kafka"
	"warden/internal/platform/metrics"
	"warden/internal/platform/redis"
	"warden/internal/policy"
	"warden/internal/registry"
	"warden/internal/registry/seed"
	registrystore "warden/internal/registry/store"
)

// services holds everything the commands run.
type services struct {
	db       *database.DB
	redis    *redis.Client
	producer *kafka.Producer
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	bot       *botapi.Client
	groups    *registry.Service
	decision  *decision.Service
	scanner   *backlog.Scanner
	memberLog *eventlog.Log
	stream    *stream.Stream
}

// openRegistry opens and migrates the database and returns the group registry.
func openRegistry(ctx context.Context, cfg config.Config, log *slog.Logger) (*database.DB, *registry.Service, error) {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	svc, err := registry.New(registrystore.NewSQL(db), registry.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, svc, nil
}

// build wires the moderation services. The database is migrated and seeded
// if empty before anything talks to the platform.
func build(ctx context.Context, cfg config.Config, log *slog.Logger, seedFile string) (*services, error) {
	s := &services{registry: metrics.NewRegistry()}
	s.metrics = metrics.New(s.registry)

	db, groups, err := openRegistry(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	s.db, s.groups = db, groups

	seedGroups, err := seed.Load(seedFile)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	if _, err := groups.Bootstrap(ctx, seedGroups); err != nil {
		s.Close(ctx)
		return nil, err
	}

	s.bot, err = botapi.New(botapi.Config{
		Token:   cfg.Bot.Token,
		BaseURL: cfg.Bot.APIURL,
		Timeout: cfg.Bot.Timeout,
		Rate:    cfg.Bot.RateLimit,
	}, botapi.WithLogger(log))
	if err != nil {
		s.Close(ctx)
		return nil, err
	}

	membershipMetrics := membershipmetrics.New(s.registry)
	live := membershipadapters.NewBotAPIRemote(s.bot)
	remote, err := s.membershipRemote(ctx, cfg, log, live, membershipMetrics)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	oracle, err := membership.New(remote, groups,
		membership.WithLogger(log),
		membership.WithMetrics(membershipMetrics),
		membership.WithFanout(cfg.Membership.Fanout),
		membership.WithLiveRemote(live),
	)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	verification, err := policy.New(oracle, policy.WithLogger(log), policy.WithMinTenure(cfg.MinTenure))
	if err != nil {
		s.Close(ctx)
		return nil, err
	}

	s.decision, err = decision.New(groups, verification,
		decisionadapters.NewBotAPIResolver(s.bot),
		decisionstore.NewSQL(db),
		decision.WithLogger(log),
		decision.WithMetrics(decisionmetrics.New(s.registry)),
	)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}

	s.scanner, err = backlog.New(groups, backlogadapters.NewBotAPIPending(s.bot), s.decision,
		backlog.WithLogger(log),
		backlog.WithMetrics(backlogmetrics.New(s.registry)),
		backlog.WithPageSize(cfg.Scan.PageSize),
		backlog.WithConcurrency(cfg.Scan.Concurrency),
	)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}

	logOpts := []eventlog.Option{eventlog.WithLogger(log)}
	s.producer, err = kafka.NewProducer(cfg.Kafka)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	if s.producer != nil {
		if cfg.Kafka.CreateTopic {
			// -1 leaves partitions and replication to the broker defaults.
			if err := s.producer.EnsureTopic(ctx, -1, -1); err != nil {
				log.WarnContext(ctx, "could not create member event topic", "topic", s.producer.Topic(), "error", err)
			}
		}
		s.stream, err = stream.New(s.producer, cfg.Kafka.BufferSize,
			stream.WithLogger(log),
			stream.WithMetrics(eventlogmetrics.New(s.registry)),
		)
		if err != nil {
			s.Close(ctx)
			return nil, err
		}
		logOpts = append(logOpts, eventlog.WithSink(s.stream))
		log.InfoContext(ctx, "streaming member events", "topic", s.producer.Topic())
	}
	s.memberLog, err = eventlog.New(eventlogstore.NewSQL(db), logOpts...)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	return s, nil
}

// membershipRemote wraps the platform lookup in the configured cache: Redis
// when REDIS_URL is set, an in-process LRU otherwise, none when the TTL is 0.
// Only tenure lookups go through it; current membership is always read live.
func (s *services) membershipRemote(ctx context.Context, cfg config.Config, log *slog.Logger, remote membership.Remote, m *membershipmetrics.Metrics) (membership.Remote, error) {
	if cfg.Membership.CacheTTL <= 0 {
		return remote, nil
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	var backend cache.Backend
	if client != nil {
		s.redis = client
		backend = cache.NewRedis(client.Client, cfg.Membership.CacheTTL)
		log.InfoContext(ctx, "membership cache backed by redis")
	} else {
		backend = cache.NewLRU(cfg.Membership.CacheSize, cfg.Membership.CacheTTL)
	}
	cached, err := cache.NewRemote(remote, backend, cache.WithLogger(log), cache.WithMetrics(m))
	if err != nil {
		return nil, fmt.Errorf("membership cache: %w", err)
	}
	return cached, nil
}

// Close releases connections. It is safe on a partially built value.
func (s *services) Close(ctx context.Context) {
	if s.producer != nil {
		s.producer.Close(ctx)
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}
