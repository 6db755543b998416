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

package api

import (
	"context"

	"github.com/oplens/oplens/pkg/models"
)

// TraceProvider serves ranked trace payloads, implemented by the trace
// aggregator.
type TraceProvider interface {
	GetTracesJSON(ctx context.Context, namespace string, windowMinutes int) ([]byte, error)
}

// SeriesProvider serves raw metric time series, implemented by the metric
// source.
type SeriesProvider interface {
	GetTimeSeries(ctx context.Context, q *models.MetricQuery) ([]models.MetricSample, error)
}

// LogProvider correlates trace IDs with log lines.
type LogProvider interface {
	FindByTrace(ctx context.Context, traceID string) *models.LogSearchResponse
}

// DashboardProvider serves the snapshot-backed dashboard reads, implemented
// by the core service.
type DashboardProvider interface {
	InfraSummary(ctx context.Context) *models.InfraSummary
	PGMetrics(ctx context.Context) models.PostgresSummary
	RedisMetrics(ctx context.Context) models.RedisStats
	MySQLMetrics(ctx context.Context) models.MySQLSummary
	SearchMetrics(ctx context.Context) models.SearchStats
	QueueMetrics(ctx context.Context) models.QueueStats
	TopPGQueries(ctx context.Context, limit int) []models.QueryStat
	TopMySQLQueries(ctx context.Context, limit int) []models.QueryStat
	CloudWatchSummary(ctx context.Context, namespace, endpoint string, minutes int) *models.CloudWatchSummary
}
