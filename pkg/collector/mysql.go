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

package collector

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const (
	defaultMySQLMaxConnections = 150
	topDigestLimit             = 5
	maxFingerprintLen          = 100
)

// MySQLQuerier is the slice of database/sql the MySQL collector needs.
type MySQLQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// MySQL polls connection and statement-digest statistics from the monitored
// MySQL instance and snapshots them into the Postgres store. The polled
// store and the snapshot store are different systems; unavailability of
// either is logged and the next cycle retries.
type MySQL struct {
	querier MySQLQuerier
	store   db.Service
	region  string
	tenant  string
	clock   Clock
	logger  logger.Logger
}

func NewMySQL(querier MySQLQuerier, store db.Service, region, tenant string, log logger.Logger) *MySQL {
	return &MySQL{
		querier: querier,
		store:   store,
		region:  region,
		tenant:  tenant,
		clock:   realClock{},
		logger:  log,
	}
}

func (*MySQL) Name() string {
	return "mysql"
}

func (m *MySQL) Poll(ctx context.Context) error {
	var active int64

	err := m.querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.processlist WHERE command != 'Sleep'`).Scan(&active)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Failed to count active connections, defaulting to 0")

		active = 0
	}

	maxConns := int64(defaultMySQLMaxConnections)
	if err := m.querier.QueryRowContext(ctx, `SELECT @@max_connections`).Scan(&maxConns); err != nil {
		maxConns = defaultMySQLMaxConnections
	}

	var slow int64
	if err := m.querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.processlist WHERE time > 1`).Scan(&slow); err != nil {
		slow = 0
	}

	snapshot := &models.MySQLConnStats{
		Timestamp:   m.clock.Now().UTC(),
		Region:      m.region,
		Tenant:      m.tenant,
		Active:      int32(active),
		Waiting:     0,
		Max:         int32(maxConns),
		SlowQueries: int32(slow),
	}

	if err := m.store.InsertMySQLConnStats(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist mysql snapshot: %w", err)
	}

	m.collectQueryStats(ctx)

	m.logger.Debug().
		Int64("active", active).
		Int64("max", maxConns).
		Int64("slow_queries", slow).
		Msg("MySQL metrics collected")

	return nil
}

// collectQueryStats snapshots the top statement digests. performance_schema
// may be disabled; that is not an error, the digests are simply skipped.
func (m *MySQL) collectQueryStats(ctx context.Context) {
	rows, err := m.querier.QueryContext(ctx, `
		SELECT
			DIGEST_TEXT,
			COUNT_STAR,
			AVG_TIMER_WAIT/1000000000 as avg_ms,
			MAX_TIMER_WAIT/1000000000 as max_ms
		FROM performance_schema.events_statements_summary_by_digest
		WHERE SCHEMA_NAME = DATABASE()
		ORDER BY SUM_TIMER_WAIT DESC
		LIMIT ?`, topDigestLimit)
	if err != nil {
		m.logger.Debug().Err(err).Msg("Statement digests unavailable, skipping query stats")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var (
			digest       string
			calls        int64
			avgMs, maxMs float64
		)

		if err := rows.Scan(&digest, &calls, &avgMs, &maxMs); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to scan statement digest")
			continue
		}

		fingerprint := digest
		if len(fingerprint) > maxFingerprintLen {
			fingerprint = fingerprint[:maxFingerprintLen]
		}

		stat := &models.QueryStat{
			Fingerprint: fingerprint,
			SampleQuery: digest,
			Calls:       int32(calls),
			MeanMs:      avgMs,
			P95Ms:       maxMs,
			P99Ms:       maxMs,
			TotalTimeMs: avgMs * float64(calls),
			Rows:        int32(calls),
		}

		if err := m.store.InsertMySQLQueryStat(ctx, m.region, m.tenant, stat); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to persist mysql query stat")
		}
	}

	if err := rows.Err(); err != nil {
		m.logger.Warn().Err(err).Msg("Statement digest iteration failed")
	}
}
