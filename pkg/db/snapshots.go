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

// Snapshot rows are append-only: inserted once by a collector cycle, never
// updated or deleted here. Retention is an external concern.

func (d *DB) InsertPGConnStats(ctx context.Context, snapshot *models.PGConnStats) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO pg_conn_stats (ts, region, tenant, active, waiting, max, replication_lag_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snapshot.Timestamp, snapshot.Region, snapshot.Tenant,
		snapshot.Active, snapshot.Waiting, snapshot.Max, snapshot.ReplicationLagSec)
	if err != nil {
		return fmt.Errorf("failed to insert pg conn stats: %w", err)
	}

	return nil
}

func (d *DB) InsertRedisStats(ctx context.Context, snapshot *models.RedisStats) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO redis_stats (ts, region, tenant, hit_ratio, mem_used_mb, evictions, ops_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snapshot.Timestamp, snapshot.Region, snapshot.Tenant,
		snapshot.HitRatio, snapshot.MemUsedMB, snapshot.Evictions, snapshot.OpsSec)
	if err != nil {
		return fmt.Errorf("failed to insert redis stats: %w", err)
	}

	return nil
}

func (d *DB) InsertMySQLConnStats(ctx context.Context, snapshot *models.MySQLConnStats) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO mysql_conn_stats (ts, region, tenant, active, waiting, max, slow_queries, replication_lag_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		snapshot.Timestamp, snapshot.Region, snapshot.Tenant,
		snapshot.Active, snapshot.Waiting, snapshot.Max, snapshot.SlowQueries, snapshot.ReplicationLagSec)
	if err != nil {
		return fmt.Errorf("failed to insert mysql conn stats: %w", err)
	}

	return nil
}

func (d *DB) InsertMySQLQueryStat(ctx context.Context, region, tenant string, stat *models.QueryStat) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO mysql_query_stats
			(ts, region, tenant, fingerprint, sample_query, calls, mean_ms, p95_ms, p99_ms, total_time_ms, rows)
		VALUES (now(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		region, tenant, stat.Fingerprint, stat.SampleQuery, stat.Calls,
		stat.MeanMs, stat.P95Ms, stat.P99Ms, stat.TotalTimeMs, stat.Rows)
	if err != nil {
		return fmt.Errorf("failed to insert mysql query stat: %w", err)
	}

	return nil
}

func (d *DB) InsertSearchStats(ctx context.Context, snapshot *models.SearchStats) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO search_stats (ts, region, tenant, cluster_status, red_indices, yellow_indices, query_p95_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snapshot.Timestamp, snapshot.Region, snapshot.Tenant,
		snapshot.ClusterStatus, snapshot.RedIndices, snapshot.YellowIndices, snapshot.QueryP95Ms)
	if err != nil {
		return fmt.Errorf("failed to insert search stats: %w", err)
	}

	return nil
}

func (d *DB) InsertQueueStats(ctx context.Context, snapshot *models.QueueStats) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO queue_stats (ts, region, tenant, depth, consumer_lag, oldest_age_sec)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		snapshot.Timestamp, snapshot.Region, snapshot.Tenant,
		snapshot.Depth, snapshot.ConsumerLag, snapshot.OldestAgeSec)
	if err != nil {
		return fmt.Errorf("failed to insert queue stats: %w", err)
	}

	return nil
}
