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

// Package lifecycle runs a service until an interrupt arrives, then shuts
// it down with a bounded grace period.
package lifecycle

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/oplens/oplens/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Service is anything with a blocking-free Start and a bounded Stop.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// CreateLogger creates a logger instance from the provided configuration.
func CreateLogger(config *logger.Config) (logger.Logger, error) {
	log, err := logger.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return log, nil
}

// Run starts the service and blocks until SIGINT or SIGTERM, then stops it.
// A Start failure is returned immediately without waiting for a signal.
func Run(ctx context.Context, svc Service, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := svc.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop service cleanly: %w", err)
	}

	return nil
}
