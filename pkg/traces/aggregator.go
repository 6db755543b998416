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

// Package traces synthesizes trace records from per-endpoint metrics. It
// fans out concurrent queries against the metric source, joins the results,
// ranks them by duration and caches the serialized payload.
package traces

import (
	"context"
	"crypto/md5" //nolint:gosec // content-derived IDs, not security
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oplens/oplens/pkg/cache"
	"github.com/oplens/oplens/pkg/cloudwatch"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const (
	defaultTTL          = 300 * time.Second
	defaultMaxEndpoints = 15

	// Fan-out queries always cover a short fixed sub-window regardless of
	// the requested window, keeping them cheap and bounded.
	subWindow = 5 * time.Minute

	// Defaults used when an individual metric query fails.
	defaultLatencyMs    = 100.0
	defaultRequestCount = 1.0
	defaultErrorCount   = 0.0

	serviceName     = "api-gateway"
	timestampLayout = "01/02/2006, 03:04:05 PM"

	metricLatency      = "LatencyMs"
	metricRequestCount = "RequestCount"
	metricError        = "Error"
)

// endpointStats is the joined fan-out result for one endpoint.
type endpointStats struct {
	endpoint string
	latency  float64
	requests float64
	errors   float64
}

// Aggregator computes ranked trace records per namespace, shielded by the
// two-tier cache.
type Aggregator struct {
	source       cloudwatch.MetricSource
	cache        cache.Cache
	logger       logger.Logger
	ttl          time.Duration
	maxEndpoints int
	now          func() time.Time
}

// NewAggregator creates an Aggregator. Zero config values fall back to the
// package defaults (300s TTL, 15 endpoint cap).
func NewAggregator(source cloudwatch.MetricSource, c cache.Cache, cfg models.TraceCacheConfig, log logger.Logger) *Aggregator {
	ttl := time.Duration(cfg.TTL)
	if ttl == 0 {
		ttl = defaultTTL
	}

	maxEndpoints := cfg.MaxEndpoints
	if maxEndpoints == 0 {
		maxEndpoints = defaultMaxEndpoints
	}

	return &Aggregator{
		source:       source,
		cache:        c,
		logger:       log,
		ttl:          ttl,
		maxEndpoints: maxEndpoints,
		now:          time.Now,
	}
}

// cacheKey is derived from the namespace only. The requested window is
// deliberately not part of the key: within the TTL, every window returns the
// payload computed for whichever window populated the cache. Accepted
// staleness tradeoff.
func cacheKey(namespace string) string {
	return "traces:" + namespace
}

// GetTraces returns the ranked trace payload for a namespace. It never fails
// outright: every external query failure degrades to a default value, and the
// only empty result is a genuinely empty endpoint set.
func (a *Aggregator) GetTraces(ctx context.Context, namespace string, windowMinutes int) (*models.TracePayload, error) {
	key := cacheKey(namespace)

	if data, ok := a.cache.Get(ctx, key); ok {
		var payload models.TracePayload
		if err := json.Unmarshal(data, &payload); err == nil {
			a.logger.Debug().Str("namespace", namespace).Msg("Trace cache hit")
			return &payload, nil
		}
		// An undecodable payload is treated as a miss and recomputed.
		a.logger.Warn().Str("namespace", namespace).Msg("Discarding undecodable cached trace payload")
	}

	a.logger.Info().Str("namespace", namespace).Msg("Trace cache miss, querying metric source")

	stats := a.collectEndpointStats(ctx, namespace)
	records := a.synthesize(stats)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Duration > records[j].Duration
	})

	payload := &models.TracePayload{
		Traces:    records,
		Namespace: namespace,
		Minutes:   windowMinutes,
	}

	if data, err := json.Marshal(payload); err == nil {
		a.cache.Set(ctx, key, data, a.ttl)
	} else {
		a.logger.Error().Err(err).Str("namespace", namespace).Msg("Failed to serialize trace payload for caching")
	}

	return payload, nil
}

// GetTracesJSON is the serialized form handed to the service layer.
func (a *Aggregator) GetTracesJSON(ctx context.Context, namespace string, windowMinutes int) ([]byte, error) {
	payload, err := a.GetTraces(ctx, namespace, windowMinutes)
	if err != nil {
		return nil, err
	}

	return json.Marshal(payload)
}

// collectEndpointStats fans out three concurrent metric queries per endpoint
// and joins all results. Endpoints run concurrently; no endpoint's slow
// queries delay another's. The returned order is the join order.
func (a *Aggregator) collectEndpointStats(ctx context.Context, namespace string) []endpointStats {
	endpoints, err := a.source.ListEndpoints(ctx, namespace)
	if err != nil {
		a.logger.Error().Err(err).Str("namespace", namespace).Msg("Failed to list endpoints")
		return nil
	}

	if len(endpoints) > a.maxEndpoints {
		endpoints = endpoints[:a.maxEndpoints]
	}

	results := make([]endpointStats, len(endpoints))

	var g errgroup.Group

	for i, endpoint := range endpoints {
		i, endpoint := i, endpoint
		g.Go(func() error {
			results[i] = a.queryEndpoint(ctx, namespace, endpoint)
			return nil
		})
	}

	// Fan-in barrier: ranking waits for every endpoint.
	_ = g.Wait()

	return results
}

// queryEndpoint issues the three per-endpoint queries concurrently. Each
// failed query is absorbed with its documented default.
func (a *Aggregator) queryEndpoint(ctx context.Context, namespace, endpoint string) endpointStats {
	stats := endpointStats{endpoint: endpoint}

	var g errgroup.Group

	g.Go(func() error {
		stats.latency = a.scalarOrDefault(ctx, namespace, endpoint, metricLatency, "p95", defaultLatencyMs)
		return nil
	})
	g.Go(func() error {
		stats.requests = a.scalarOrDefault(ctx, namespace, endpoint, metricRequestCount, "Sum", defaultRequestCount)
		return nil
	})
	g.Go(func() error {
		stats.errors = a.scalarOrDefault(ctx, namespace, endpoint, metricError, "Sum", defaultErrorCount)
		return nil
	})

	_ = g.Wait()

	return stats
}

func (a *Aggregator) scalarOrDefault(ctx context.Context, namespace, endpoint, metric, stat string, fallback float64) float64 {
	end := a.now()

	value, err := a.source.GetScalar(ctx, &models.MetricQuery{
		Namespace:      namespace,
		MetricName:     metric,
		DimensionValue: endpoint,
		Stat:           stat,
		Start:          end.Add(-subWindow),
		End:            end,
	})
	if err != nil {
		a.logger.Warn().Err(err).
			Str("endpoint", endpoint).
			Str("metric", metric).
			Msg("Metric query failed, using default")

		return fallback
	}

	return value
}

// synthesize builds one trace record per endpoint that saw traffic.
// Endpoints with zero observed requests carry no signal and are dropped.
func (a *Aggregator) synthesize(stats []endpointStats) []models.TraceRecord {
	records := make([]models.TraceRecord, 0, len(stats))
	timestamp := a.now().UTC().Format(timestampLayout)

	for _, s := range stats {
		if s.requests <= 0 {
			continue
		}

		status := models.TraceStatusSuccess
		if s.errors > 0 {
			status = models.TraceStatusError
		}

		duration := int64(s.latency)

		records = append(records, models.TraceRecord{
			ID:        traceID(s.endpoint, s.latency),
			Method:    inferMethod(s.endpoint),
			Endpoint:  s.endpoint,
			Status:    status,
			Duration:  duration,
			Spans:     estimateSpans(s.endpoint, duration),
			Service:   serviceName,
			Timestamp: timestamp,
		})
	}

	return records
}

// traceID is a stable content hash: identical endpoint and latency always
// produce the same ID.
func traceID(endpoint string, latency float64) string {
	sum := md5.Sum([]byte(endpoint + strconv.FormatFloat(latency, 'f', -1, 64))) //nolint:gosec
	return fmt.Sprintf("%x", sum)
}
