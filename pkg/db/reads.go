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

package db

import (
	"context"
	"fmt"

	"github.com/oplens/oplens/pkg/models"
)

// Read queries back the dashboard endpoints. Each returns the most recent
// snapshot row for (region, tenant), or an aggregate over the stat tables.

func (d *DB) LatestPGConnStats(ctx context.Context, region, tenant string) (*models.PGConnStats, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT ts, active, waiting, max, replication_lag_sec
		FROM pg_conn_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC LIMIT 1`, region, tenant)

	snapshot := &models.PGConnStats{Region: region, Tenant: tenant}

	err := row.Scan(&snapshot.Timestamp, &snapshot.Active, &snapshot.Waiting,
		&snapshot.Max, &snapshot.ReplicationLagSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read pg conn stats: %w", err)
	}

	return snapshot, nil
}

func (d *DB) LatestRedisStats(ctx context.Context, region, tenant string) (*models.RedisStats, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT ts, hit_ratio, mem_used_mb, evictions, ops_sec
		FROM redis_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC LIMIT 1`, region, tenant)

	snapshot := &models.RedisStats{Region: region, Tenant: tenant}

	err := row.Scan(&snapshot.Timestamp, &snapshot.HitRatio, &snapshot.MemUsedMB,
		&snapshot.Evictions, &snapshot.OpsSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read redis stats: %w", err)
	}

	return snapshot, nil
}

func (d *DB) LatestMySQLConnStats(ctx context.Context, region, tenant string) (*models.MySQLConnStats, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT ts, active, waiting, max, slow_queries, replication_lag_sec
		FROM mysql_conn_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC LIMIT 1`, region, tenant)

	snapshot := &models.MySQLConnStats{Region: region, Tenant: tenant}

	err := row.Scan(&snapshot.Timestamp, &snapshot.Active, &snapshot.Waiting,
		&snapshot.Max, &snapshot.SlowQueries, &snapshot.ReplicationLagSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read mysql conn stats: %w", err)
	}

	return snapshot, nil
}

func (d *DB) LatestSearchStats(ctx context.Context, region, tenant string) (*models.SearchStats, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT ts, cluster_status, red_indices, yellow_indices, query_p95_ms
		FROM search_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC LIMIT 1`, region, tenant)

	snapshot := &models.SearchStats{Region: region, Tenant: tenant}

	err := row.Scan(&snapshot.Timestamp, &snapshot.ClusterStatus, &snapshot.RedIndices,
		&snapshot.YellowIndices, &snapshot.QueryP95Ms)
	if err != nil {
		return nil, fmt.Errorf("failed to read search stats: %w", err)
	}

	return snapshot, nil
}

func (d *DB) LatestQueueStats(ctx context.Context, region, tenant string) (*models.QueueStats, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT ts, depth, consumer_lag, oldest_age_sec
		FROM queue_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC LIMIT 1`, region, tenant)

	snapshot := &models.QueueStats{Region: region, Tenant: tenant}

	err := row.Scan(&snapshot.Timestamp, &snapshot.Depth, &snapshot.ConsumerLag, &snapshot.OldestAgeSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue stats: %w", err)
	}

	return snapshot, nil
}

func (d *DB) PGQueryLatency(ctx context.Context, region, tenant string) (*models.LatencySummary, error) {
	return d.queryLatency(ctx, "pg_query_stats", region, tenant)
}

func (d *DB) MySQLQueryLatency(ctx context.Context, region, tenant string) (*models.LatencySummary, error) {
	return d.queryLatency(ctx, "mysql_query_stats", region, tenant)
}

func (d *DB) queryLatency(ctx context.Context, table, region, tenant string) (*models.LatencySummary, error) {
	row := d.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT COALESCE(AVG(p95_ms), 0.0), COALESCE(AVG(p99_ms), 0.0)
		FROM %s
		WHERE region = $1 AND tenant = $2`, table), region, tenant)

	summary := &models.LatencySummary{}

	if err := row.Scan(&summary.P95Ms, &summary.P99Ms); err != nil {
		return nil, fmt.Errorf("failed to read query latency from %s: %w", table, err)
	}

	return summary, nil
}

func (d *DB) TopPGQueries(ctx context.Context, region, tenant string, limit int) ([]models.QueryStat, error) {
	return d.topQueries(ctx, "pg_query_stats", region, tenant, limit)
}

func (d *DB) TopMySQLQueries(ctx context.Context, region, tenant string, limit int) ([]models.QueryStat, error) {
	return d.topQueries(ctx, "mysql_query_stats", region, tenant, limit)
}

func (d *DB) topQueries(ctx context.Context, table, region, tenant string, limit int) ([]models.QueryStat, error) {
	rows, err := d.pool.Query(ctx, fmt.Sprintf(`
		SELECT fingerprint, sample_query, calls, mean_ms, p95_ms, p99_ms, total_time_ms, rows
		FROM %s
		WHERE region = $1 AND tenant = $2
		ORDER BY p99_ms DESC
		LIMIT $3`, table), region, tenant, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read top queries from %s: %w", table, err)
	}
	defer rows.Close()

	stats := make([]models.QueryStat, 0, limit)

	for rows.Next() {
		var stat models.QueryStat

		err := rows.Scan(&stat.Fingerprint, &stat.SampleQuery, &stat.Calls, &stat.MeanMs,
			&stat.P95Ms, &stat.P99Ms, &stat.TotalTimeMs, &stat.Rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query stat: %w", err)
		}

		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (d *DB) PGLatencySeries(ctx context.Context, region, tenant string, points int) ([]models.LatencyPoint, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT to_char(ts, 'YYYY-MM-DD"T"HH24:MI:SS"Z"'), p95_ms, p99_ms
		FROM pg_query_stats
		WHERE region = $1 AND tenant = $2
		ORDER BY ts DESC
		LIMIT $3`, region, tenant, points)
	if err != nil {
		return nil, fmt.Errorf("failed to read latency series: %w", err)
	}
	defer rows.Close()

	series := make([]models.LatencyPoint, 0, points)

	for rows.Next() {
		var point models.LatencyPoint

		if err := rows.Scan(&point.Timestamp, &point.P95Ms, &point.P99Ms); err != nil {
			return nil, fmt.Errorf("failed to scan latency point: %w", err)
		}

		series = append(series, point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows come back newest first; callers chart oldest to newest.
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}

	return series, nil
}
