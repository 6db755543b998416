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

// Package api provides the HTTP API server for the dashboard.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	olhttp "github.com/oplens/oplens/pkg/http"
	"github.com/oplens/oplens/pkg/logger"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Server is the HTTP API server. Providers left nil make their endpoints
// answer 503 rather than panic, so a partially wired server still serves
// the rest.
type Server struct {
	router           *mux.Router
	logger           logger.Logger
	defaultNamespace string

	traces    TraceProvider
	series    SeriesProvider
	logs      LogProvider
	dashboard DashboardProvider

	httpServer *http.Server
}

// NewServer creates an API server with the given options.
func NewServer(log logger.Logger, options ...func(*Server)) *Server {
	s := &Server{
		router: mux.NewRouter(),
		logger: log,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithTraceProvider sets the trace aggregation backend.
func WithTraceProvider(p TraceProvider) func(*Server) {
	return func(s *Server) {
		s.traces = p
	}
}

// WithSeriesProvider sets the raw metric series backend.
func WithSeriesProvider(p SeriesProvider) func(*Server) {
	return func(s *Server) {
		s.series = p
	}
}

// WithLogProvider sets the log correlation backend.
func WithLogProvider(p LogProvider) func(*Server) {
	return func(s *Server) {
		s.logs = p
	}
}

// WithDashboardProvider sets the snapshot read backend.
func WithDashboardProvider(p DashboardProvider) func(*Server) {
	return func(s *Server) {
		s.dashboard = p
	}
}

// WithDefaultNamespace sets the namespace used when requests omit one.
func WithDefaultNamespace(ns string) func(*Server) {
	return func(s *Server) {
		s.defaultNamespace = ns
	}
}

func (s *Server) setupRoutes() {
	s.router.Use(olhttp.RequestIDMiddleware)
	s.router.Use(olhttp.LoggingMiddleware(s.logger))
	s.router.Use(olhttp.CORSMiddleware)

	s.router.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/cloudwatch/summary", s.getCloudWatchSummary).Methods(http.MethodGet)
	api.HandleFunc("/cloudwatch/traces", s.getTraces).Methods(http.MethodGet)
	api.HandleFunc("/cloudwatch/metrics/timeseries", s.getTimeSeries).Methods(http.MethodGet)
	api.HandleFunc("/logs/by-trace/{traceID}", s.getLogsByTrace).Methods(http.MethodGet)

	api.HandleFunc("/summary", s.getSummary).Methods(http.MethodGet)
	api.HandleFunc("/db/pg/metrics", s.getPGMetrics).Methods(http.MethodGet)
	api.HandleFunc("/db/pg/top-queries", s.getTopPGQueries).Methods(http.MethodGet)
	api.HandleFunc("/db/mysql/metrics", s.getMySQLMetrics).Methods(http.MethodGet)
	api.HandleFunc("/db/mysql/top-queries", s.getTopMySQLQueries).Methods(http.MethodGet)
	api.HandleFunc("/redis/metrics", s.getRedisMetrics).Methods(http.MethodGet)
	api.HandleFunc("/search/metrics", s.getSearchMetrics).Methods(http.MethodGet)
	api.HandleFunc("/queues/metrics", s.getQueueMetrics).Methods(http.MethodGet)
}

// Router exposes the handler tree, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves HTTP on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Msg("API server listening")

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}
