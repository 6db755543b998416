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

//go:generate mockgen -destination=mock_db.go -package=db github.com/oplens/oplens/pkg/db Service

package db

import (
	"context"

	"github.com/oplens/oplens/pkg/models"
)

// Service is the persistent snapshot store. Inserts are append-only; callers
// treat them as best-effort and log failures instead of retrying. The read
// methods back the dashboard query endpoints.
type Service interface {
	InsertPGConnStats(ctx context.Context, snapshot *models.PGConnStats) error
	InsertRedisStats(ctx context.Context, snapshot *models.RedisStats) error
	InsertMySQLConnStats(ctx context.Context, snapshot *models.MySQLConnStats) error
	InsertMySQLQueryStat(ctx context.Context, region, tenant string, stat *models.QueryStat) error
	InsertSearchStats(ctx context.Context, snapshot *models.SearchStats) error
	InsertQueueStats(ctx context.Context, snapshot *models.QueueStats) error

	LatestPGConnStats(ctx context.Context, region, tenant string) (*models.PGConnStats, error)
	LatestRedisStats(ctx context.Context, region, tenant string) (*models.RedisStats, error)
	LatestMySQLConnStats(ctx context.Context, region, tenant string) (*models.MySQLConnStats, error)
	LatestSearchStats(ctx context.Context, region, tenant string) (*models.SearchStats, error)
	LatestQueueStats(ctx context.Context, region, tenant string) (*models.QueueStats, error)

	PGQueryLatency(ctx context.Context, region, tenant string) (*models.LatencySummary, error)
	MySQLQueryLatency(ctx context.Context, region, tenant string) (*models.LatencySummary, error)
	TopPGQueries(ctx context.Context, region, tenant string, limit int) ([]models.QueryStat, error)
	TopMySQLQueries(ctx context.Context, region, tenant string, limit int) ([]models.QueryStat, error)
	PGLatencySeries(ctx context.Context, region, tenant string, points int) ([]models.LatencyPoint, error)

	Close()
}
