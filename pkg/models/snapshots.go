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

package models

import "time"

// Collector snapshots are append-only rows, one per (subsystem, region,
// tenant, timestamp). They are created by collector jobs, never updated in
// place, and read later by the dashboard query endpoints.

// PGConnStats is a point-in-time Postgres connection snapshot.
type PGConnStats struct {
	Timestamp         time.Time `json:"ts"`
	Region            string    `json:"region"`
	Tenant            string    `json:"tenant"`
	Active            int32     `json:"active"`
	Waiting           int32     `json:"waiting"`
	Max               int32     `json:"max"`
	ReplicationLagSec float64   `json:"replication_lag_sec"`
}

// RedisStats is a point-in-time cache health snapshot.
type RedisStats struct {
	Timestamp time.Time `json:"ts"`
	Region    string    `json:"region"`
	Tenant    string    `json:"tenant"`
	HitRatio  float64   `json:"hit_ratio"`
	MemUsedMB float64   `json:"mem_used_mb"`
	Evictions int64     `json:"evictions"`
	OpsSec    int64     `json:"ops_sec"`
}

// MySQLConnStats is a point-in-time MySQL connection snapshot.
type MySQLConnStats struct {
	Timestamp         time.Time `json:"ts"`
	Region            string    `json:"region"`
	Tenant            string    `json:"tenant"`
	Active            int32     `json:"active"`
	Waiting           int32     `json:"waiting"`
	Max               int32     `json:"max"`
	SlowQueries       int32     `json:"slow_queries"`
	ReplicationLagSec float64   `json:"replication_lag_sec"`
}

// SearchStats is a point-in-time search cluster health snapshot.
type SearchStats struct {
	Timestamp     time.Time `json:"ts"`
	Region        string    `json:"region"`
	Tenant        string    `json:"tenant"`
	ClusterStatus string    `json:"cluster_status"`
	RedIndices    int32     `json:"red_indices"`
	YellowIndices int32     `json:"yellow_indices"`
	QueryP95Ms    float64   `json:"query_p95_ms"`
}

// QueueStats is a point-in-time message queue depth snapshot.
type QueueStats struct {
	Timestamp    time.Time `json:"ts"`
	Region       string    `json:"region"`
	Tenant       string    `json:"tenant"`
	Depth        int64     `json:"queue_depth"`
	ConsumerLag  int64     `json:"consumer_lag"`
	OldestAgeSec int64     `json:"oldest_age_sec"`
}

// QueryStat is one aggregated statement digest row, shared by the Postgres
// and MySQL query-stat tables.
type QueryStat struct {
	Fingerprint string  `json:"fingerprint"`
	SampleQuery string  `json:"sample_query"`
	Calls       int32   `json:"calls"`
	MeanMs      float64 `json:"mean_ms"`
	P95Ms       float64 `json:"p95_ms"`
	P99Ms       float64 `json:"p99_ms"`
	TotalTimeMs float64 `json:"total_time_ms"`
	Rows        int32   `json:"rows"`
}

// LatencyPoint is one entry of a query latency series.
type LatencyPoint struct {
	Timestamp string  `json:"ts"`
	P95Ms     float64 `json:"p95_ms"`
	P99Ms     float64 `json:"p99_ms"`
}

// LatencySummary holds aggregate latency percentiles for a tenant.
type LatencySummary struct {
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}
