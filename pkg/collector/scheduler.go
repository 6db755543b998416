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

// Package collector runs the periodic snapshot jobs. Each registered
// collector gets its own loop: poll once, sleep the interval, repeat until
// shutdown. Jobs are fully isolated; one job's failure or panic never stops,
// delays or corrupts another.
package collector

import (
	"context"
	"sync"
	"time"

	"github.com/oplens/oplens/pkg/logger"
)

const defaultInterval = 10 * time.Second

// Scheduler supervises the collector loops. Jobs are registered before
// Start and run until the context is canceled; there is no pause or resume.
type Scheduler struct {
	collectors []Collector
	interval   time.Duration
	clock      Clock
	logger     logger.Logger
	wg         sync.WaitGroup
}

// NewScheduler creates a scheduler. A nil clock defaults to the real clock;
// a non-positive interval defaults to 10s.
func NewScheduler(interval time.Duration, clock Clock, log logger.Logger) *Scheduler {
	if clock == nil {
		clock = realClock{}
	}

	if interval <= 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		interval: interval,
		clock:    clock,
		logger:   log,
	}
}

// Register adds a collector. Must be called before Start.
func (s *Scheduler) Register(c Collector) {
	s.collectors = append(s.collectors, c)
}

// Start spawns one loop per registered collector and returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	for _, c := range s.collectors {
		c := c
		s.wg.Add(1)

		go func() {
			defer s.wg.Done()
			s.runLoop(ctx, c)
		}()
	}

	s.logger.Info().
		Int("collectors", len(s.collectors)).
		Dur("interval", s.interval).
		Msg("Collector scheduler started")
}

// Wait blocks until every loop has observed shutdown.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, c Collector) {
	log := s.logger.WithComponent(c.Name())
	log.Info().Msg("Collector loop starting")

	s.pollOnce(ctx, c, log)

	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Collector loop stopping")
			return
		case <-ticker.Chan():
			s.pollOnce(ctx, c, log)
		}
	}
}

// pollOnce runs a single cycle behind a recovery boundary so a panicking
// collector cannot take down its siblings. Errors are logged; the interval
// itself is the throttle, so there is no backoff and no in-cycle retry.
func (s *Scheduler) pollOnce(ctx context.Context, c Collector, log logger.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Collector poll panicked")
		}
	}()

	if err := c.Poll(ctx); err != nil {
		log.Error().Err(err).Msg("Collector poll failed")
	}
}
