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
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const defaultMaxConnections = 100

// PGQuerier is the slice of the pgx pool the Postgres collector needs.
type PGQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres polls connection activity from the monitored Postgres instance
// and snapshots it into pg_conn_stats.
type Postgres struct {
	querier PGQuerier
	store   db.Service
	region  string
	tenant  string
	clock   Clock
	logger  logger.Logger
}

func NewPostgres(querier PGQuerier, store db.Service, region, tenant string, log logger.Logger) *Postgres {
	return &Postgres{
		querier: querier,
		store:   store,
		region:  region,
		tenant:  tenant,
		clock:   realClock{},
		logger:  log,
	}
}

func (*Postgres) Name() string {
	return "postgres"
}

func (p *Postgres) Poll(ctx context.Context) error {
	var active int64

	err := p.querier.QueryRow(ctx,
		`select count(*) from pg_stat_activity where state = 'active'`).Scan(&active)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to count active connections, defaulting to 0")

		active = 0
	}

	maxConns := int64(defaultMaxConnections)

	var maxRaw string

	if err := p.querier.QueryRow(ctx, `show max_connections`).Scan(&maxRaw); err == nil {
		if parsed, perr := strconv.ParseInt(maxRaw, 10, 64); perr == nil {
			maxConns = parsed
		}
	}

	snapshot := &models.PGConnStats{
		Timestamp: p.clock.Now().UTC(),
		Region:    p.region,
		Tenant:    p.tenant,
		Active:    int32(active),
		Waiting:   0,
		Max:       int32(maxConns),
	}

	if err := p.store.InsertPGConnStats(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist pg snapshot: %w", err)
	}

	return nil
}
