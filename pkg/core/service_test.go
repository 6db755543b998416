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

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oplens/oplens/pkg/cloudwatch"
	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

func newTestService(store db.Service, source cloudwatch.MetricSource) *Service {
	return &Service{
		cfg:    &models.CoreConfig{Region: "us-east-1", Tenant: "enterprise_123"},
		logger: logger.NewTestLogger(),
		store:  store,
		source: source,
	}
}

func TestInfraSummaryDefaultsWithoutStore(t *testing.T) {
	svc := newTestService(nil, nil)

	summary := svc.InfraSummary(context.Background())

	assert.Equal(t, int32(58), summary.Postgres.Conns.Active)
	assert.Equal(t, int32(100), summary.Postgres.Conns.Max)
	assert.InDelta(t, 22.4, summary.Postgres.Latency.P95Ms, 0.0001)
	assert.InDelta(t, 0.93, summary.Redis.HitRatio, 0.0001)
	assert.Equal(t, "green", summary.Search.ClusterStatus)
	assert.Equal(t, int64(120), summary.Queues.Depth)
	assert.Equal(t, int32(25), summary.MySQL.Conns.Active)
}

func TestInfraSummaryPrefersStoredSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockService(ctrl)

	store.EXPECT().
		LatestPGConnStats(gomock.Any(), "us-east-1", "enterprise_123").
		Return(&models.PGConnStats{Active: 91, Max: 200}, nil)
	store.EXPECT().
		PGQueryLatency(gomock.Any(), "us-east-1", "enterprise_123").
		Return(nil, errors.New("no rows"))
	store.EXPECT().
		LatestRedisStats(gomock.Any(), "us-east-1", "enterprise_123").
		Return(&models.RedisStats{HitRatio: 0.71}, nil)
	store.EXPECT().
		LatestSearchStats(gomock.Any(), "us-east-1", "enterprise_123").
		Return(nil, errors.New("no rows"))
	store.EXPECT().
		LatestQueueStats(gomock.Any(), "us-east-1", "enterprise_123").
		Return(&models.QueueStats{Depth: 7}, nil)
	store.EXPECT().
		LatestMySQLConnStats(gomock.Any(), "us-east-1", "enterprise_123").
		Return(nil, errors.New("no rows"))
	store.EXPECT().
		MySQLQueryLatency(gomock.Any(), "us-east-1", "enterprise_123").
		Return(&models.LatencySummary{P95Ms: 9.0, P99Ms: 31.0}, nil)

	svc := newTestService(store, nil)
	summary := svc.InfraSummary(context.Background())

	// Stored rows replace defaults; failed lookups keep them.
	assert.Equal(t, int32(91), summary.Postgres.Conns.Active)
	assert.InDelta(t, 22.4, summary.Postgres.Latency.P95Ms, 0.0001)
	assert.InDelta(t, 0.71, summary.Redis.HitRatio, 0.0001)
	assert.Equal(t, "green", summary.Search.ClusterStatus)
	assert.Equal(t, int64(7), summary.Queues.Depth)
	assert.Equal(t, int32(25), summary.MySQL.Conns.Active)
	assert.InDelta(t, 9.0, summary.MySQL.Latency.P95Ms, 0.0001)
}

func TestPGMetricsIncludesSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockService(ctrl)

	store.EXPECT().
		LatestPGConnStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.PGConnStats{Active: 40, Max: 100}, nil)
	store.EXPECT().
		PGQueryLatency(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LatencySummary{P95Ms: 17.0, P99Ms: 60.0}, nil)
	store.EXPECT().
		PGLatencySeries(gomock.Any(), gomock.Any(), gomock.Any(), latencySeriesPoints).
		Return([]models.LatencyPoint{{Timestamp: "2025-06-01T12:00:00Z", P95Ms: 17.0, P99Ms: 60.0}}, nil)

	svc := newTestService(store, nil)
	out := svc.PGMetrics(context.Background())

	assert.Equal(t, int32(40), out.Conns.Active)
	require.Len(t, out.Series, 1)
	assert.InDelta(t, 17.0, out.Series[0].P95Ms, 0.0001)
}

func TestTopPGQueriesEmptyOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockService(ctrl)

	store.EXPECT().
		TopPGQueries(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(nil, errors.New("database unavailable"))

	svc := newTestService(store, nil)
	out := svc.TopPGQueries(context.Background(), 10)

	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCloudWatchSummaryComputesErrorRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := cloudwatch.NewMockMetricSource(ctrl)

	source.EXPECT().
		GetScalar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.MetricQuery) (float64, error) {
			switch q.MetricName {
			case "LatencyMs":
				return 90.0, nil
			case "RequestCount":
				return 200.0, nil
			default:
				return 10.0, nil
			}
		}).
		Times(3)

	svc := newTestService(nil, source)
	out := svc.CloudWatchSummary(context.Background(), "prod/gateway", "create-vault", 30)

	assert.InDelta(t, 90.0, out.P95Ms, 0.0001)
	assert.InDelta(t, 200.0, out.Requests, 0.0001)
	assert.InDelta(t, 10.0, out.Errors, 0.0001)
	assert.InDelta(t, 0.05, out.ErrorRate, 0.0001)
}

func TestCloudWatchSummaryFailuresYieldZeroes(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := cloudwatch.NewMockMetricSource(ctrl)

	source.EXPECT().
		GetScalar(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("throttled")).
		Times(3)

	svc := newTestService(nil, source)
	out := svc.CloudWatchSummary(context.Background(), "prod/gateway", "create-vault", 30)

	assert.Zero(t, out.P95Ms)
	assert.Zero(t, out.Requests)
	assert.Zero(t, out.ErrorRate)
}
