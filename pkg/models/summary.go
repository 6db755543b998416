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

// PostgresSummary combines the latest connection snapshot with aggregate
// query latency for the dashboard summary view.
type PostgresSummary struct {
	Conns   PGConnStats    `json:"conns"`
	Latency LatencySummary `json:"latency"`
	Series  []LatencyPoint `json:"latency_series,omitempty"`
}

// MySQLSummary combines the latest connection snapshot with aggregate query
// latency.
type MySQLSummary struct {
	Conns   MySQLConnStats `json:"conns"`
	Latency LatencySummary `json:"latency"`
}

// InfraSummary is the one-call overview of every monitored subsystem. Fields
// fall back to representative defaults when no snapshot exists yet, so the
// dashboard always renders.
type InfraSummary struct {
	Postgres PostgresSummary `json:"postgres"`
	Redis    RedisStats      `json:"redis"`
	MySQL    MySQLSummary    `json:"mysql"`
	Search   SearchStats     `json:"search"`
	Queues   QueueStats      `json:"queues"`
}

// CloudWatchSummary aggregates one endpoint's request metrics over a recent
// window.
type CloudWatchSummary struct {
	Namespace string  `json:"namespace"`
	Endpoint  string  `json:"endpoint"`
	Minutes   int     `json:"minutes"`
	P95Ms     float64 `json:"p95_ms"`
	Requests  float64 `json:"requests"`
	Errors    float64 `json:"errors"`
	ErrorRate float64 `json:"error_rate"`
}
