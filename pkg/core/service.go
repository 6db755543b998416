/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core wires the configured backends into the trace aggregator, the
// collector scheduler and the dashboard read services. Every backend is
// optional; an absent config section means that backend's collector never
// starts and its reads serve fallback defaults.
package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	_ "github.com/go-sql-driver/mysql" // mysql driver for the collector handle

	"github.com/oplens/oplens/pkg/cache"
	"github.com/oplens/oplens/pkg/cloudwatch"
	"github.com/oplens/oplens/pkg/collector"
	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/logsearch"
	"github.com/oplens/oplens/pkg/models"
	"github.com/oplens/oplens/pkg/traces"
)

// Service owns the wired components and their lifecycles.
type Service struct {
	cfg    *models.CoreConfig
	logger logger.Logger

	pool       *pgxpool.Pool
	store      db.Service
	aggregator *traces.Aggregator
	source     cloudwatch.MetricSource
	searcher   *logsearch.Searcher
	scheduler  *collector.Scheduler

	redisClient *redis.Client
	mysqlDB     *sql.DB
	natsConn    *nats.Conn
}

// NewService builds a Service from config. The metric source and cache are
// always wired; Postgres, Redis, MySQL, OpenSearch and NATS come up only
// when configured. The snapshot store must be reachable at startup; the
// polled backends need not be, their collectors log failures and retry
// every cycle.
func NewService(ctx context.Context, cfg *models.CoreConfig, log logger.Logger) (*Service, error) {
	s := &Service{cfg: cfg, logger: log}

	source, err := cloudwatch.NewSource(ctx, cfg.CloudWatch, log.WithComponent("cloudwatch"))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric source: %w", err)
	}

	s.source = source

	var shared cache.SharedTier

	if cfg.Redis != nil {
		shared, err = cache.NewRedisTier(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create shared cache tier: %w", err)
		}

		opts, perr := redis.ParseURL(cfg.Redis.URL)
		if perr != nil {
			return nil, fmt.Errorf("invalid redis url: %w", perr)
		}

		s.redisClient = redis.NewClient(opts)
	}

	tiered := cache.NewTwoTier(shared, log.WithComponent("cache"))
	s.aggregator = traces.NewAggregator(source, tiered, cfg.TraceCache, log.WithComponent("traces"))

	if cfg.Database != nil {
		pool, perr := db.NewPool(ctx, cfg.Database, log)
		if perr != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", perr)
		}

		s.pool = pool
		s.store = db.New(pool, log.WithComponent("db"))
	}

	if cfg.OpenSearch != nil {
		s.searcher = logsearch.NewSearcher(cfg.OpenSearch.URL, log.WithComponent("logsearch"))
	}

	if cfg.CollectorsEnabled && s.store != nil {
		s.scheduler = s.buildScheduler(cfg, log)
	}

	return s, nil
}

// buildScheduler registers one collector per configured backend. The
// snapshot store doubles as the Postgres instance under observation.
func (s *Service) buildScheduler(cfg *models.CoreConfig, log logger.Logger) *collector.Scheduler {
	sched := collector.NewScheduler(time.Duration(cfg.CollectorInterval), nil, log.WithComponent("collector"))

	sched.Register(collector.NewPostgres(s.pool, s.store, cfg.Region, cfg.Tenant, log))

	if s.redisClient != nil {
		sched.Register(collector.NewRedis(s.redisClient, s.store, cfg.Region, cfg.Tenant, log))
	}

	if cfg.MySQL != nil {
		handle, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			log.Warn().Err(err).Msg("Invalid MySQL DSN, skipping mysql collector")
		} else {
			s.mysqlDB = handle
			sched.Register(collector.NewMySQL(handle, s.store, cfg.Region, cfg.Tenant, log))
		}
	}

	if cfg.OpenSearch != nil {
		sched.Register(collector.NewSearch(cfg.OpenSearch.URL, s.store, cfg.Region, cfg.Tenant, log))
	}

	if cfg.NATS != nil {
		nc, err := nats.Connect(cfg.NATS.URL)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unreachable, skipping queue collector")
		} else if js, jserr := nc.JetStream(); jserr != nil {
			log.Warn().Err(jserr).Msg("JetStream unavailable, skipping queue collector")

			nc.Close()
		} else {
			s.natsConn = nc
			sched.Register(collector.NewQueues(js, cfg.NATS.Stream, cfg.NATS.Consumer, s.store,
				cfg.Region, cfg.Tenant, log))
		}
	}

	return sched
}

// Aggregator exposes the trace aggregator for the API layer.
func (s *Service) Aggregator() *traces.Aggregator {
	return s.aggregator
}

// MetricSource exposes the raw metric source for the API layer.
func (s *Service) MetricSource() cloudwatch.MetricSource {
	return s.source
}

// Searcher returns the log search collaborator, nil when OpenSearch is not
// configured.
func (s *Service) Searcher() *logsearch.Searcher {
	return s.searcher
}

// Start launches the collector loops. It returns immediately; the loops are
// bound to ctx and stop when it is canceled.
func (s *Service) Start(ctx context.Context) error {
	if s.scheduler != nil {
		s.scheduler.Start(ctx)
	} else {
		s.logger.Info().Msg("Collectors disabled")
	}

	return nil
}

// Stop waits for the collector loops and releases backend connections.
func (s *Service) Stop(_ context.Context) error {
	if s.scheduler != nil {
		s.scheduler.Wait()
	}

	if s.natsConn != nil {
		s.natsConn.Close()
	}

	if s.mysqlDB != nil {
		if err := s.mysqlDB.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close mysql handle")
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close redis client")
		}
	}

	if s.store != nil {
		s.store.Close()
	}

	return nil
}
