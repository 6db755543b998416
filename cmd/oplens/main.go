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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/oplens/oplens/pkg/config"
	"github.com/oplens/oplens/pkg/core"
	"github.com/oplens/oplens/pkg/core/api"
	"github.com/oplens/oplens/pkg/lifecycle"
	"github.com/oplens/oplens/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to oplens config file (optional, env-only without it)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	coreLogger, err := lifecycle.CreateLogger(logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := core.NewService(ctx, cfg, coreLogger)
	if err != nil {
		return err
	}

	options := []func(*api.Server){
		api.WithTraceProvider(svc.Aggregator()),
		api.WithSeriesProvider(svc.MetricSource()),
		api.WithDashboardProvider(svc),
		api.WithDefaultNamespace(cfg.CloudWatch.DefaultNamespace),
	}

	if searcher := svc.Searcher(); searcher != nil {
		options = append(options, api.WithLogProvider(searcher))
	}

	server := api.NewServer(coreLogger.WithComponent("api"), options...)

	app := &app{
		listenAddr: cfg.ListenAddr,
		svc:        svc,
		server:     server,
		logger:     coreLogger,
	}

	return lifecycle.Run(ctx, app, coreLogger)
}

// app composes the collector service and the API server into one lifecycle.
type app struct {
	listenAddr string
	svc        *core.Service
	server     *api.Server
	logger     logger.Logger
}

func (a *app) Start(ctx context.Context) error {
	if err := a.svc.Start(ctx); err != nil {
		return err
	}

	go func() {
		if err := a.server.Start(a.listenAddr); err != nil {
			a.logger.Error().Err(err).Msg("API server exited")
		}
	}()

	return nil
}

func (a *app) Stop(ctx context.Context) error {
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("API server shutdown failed")
	}

	return a.svc.Stop(ctx)
}
