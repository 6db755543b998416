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
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const bytesPerMB = 1024.0 * 1024.0

// RedisInfoClient is the slice of the Redis client the collector needs.
type RedisInfoClient interface {
	Info(ctx context.Context, section ...string) *redis.StringCmd
}

// Redis polls INFO from the monitored Redis instance and snapshots hit
// ratio, memory use and eviction counts into redis_stats.
type Redis struct {
	client RedisInfoClient
	store  db.Service
	region string
	tenant string
	clock  Clock
	logger logger.Logger
}

func NewRedis(client RedisInfoClient, store db.Service, region, tenant string, log logger.Logger) *Redis {
	return &Redis{
		client: client,
		store:  store,
		region: region,
		tenant: tenant,
		clock:  realClock{},
		logger: log,
	}
}

func (*Redis) Name() string {
	return "redis"
}

func (r *Redis) Poll(ctx context.Context) error {
	info, err := r.client.Info(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch redis info: %w", err)
	}

	stats := parseRedisInfo(info)

	snapshot := &models.RedisStats{
		Timestamp: r.clock.Now().UTC(),
		Region:    r.region,
		Tenant:    r.tenant,
		HitRatio:  stats.hitRatio,
		MemUsedMB: stats.memUsedMB,
		Evictions: stats.evictions,
		OpsSec:    stats.opsSec,
	}

	if err := r.store.InsertRedisStats(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist redis snapshot: %w", err)
	}

	return nil
}

type redisInfoStats struct {
	hitRatio  float64
	memUsedMB float64
	evictions int64
	opsSec    int64
}

// parseRedisInfo extracts the health indicators from an INFO dump. Missing
// keys leave their fields zero-valued; the snapshot is persisted regardless.
func parseRedisInfo(info string) redisInfoStats {
	var (
		stats  redisInfoStats
		hits   float64
		misses float64
	)

	for _, line := range strings.Split(info, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}

		switch key {
		case "keyspace_hits":
			hits, _ = strconv.ParseFloat(value, 64)
		case "keyspace_misses":
			misses, _ = strconv.ParseFloat(value, 64)
		case "used_memory":
			if bytes, err := strconv.ParseFloat(value, 64); err == nil {
				stats.memUsedMB = bytes / bytesPerMB
			}
		case "evicted_keys":
			stats.evictions, _ = strconv.ParseInt(value, 10, 64)
		case "instantaneous_ops_per_sec":
			stats.opsSec, _ = strconv.ParseInt(value, 10, 64)
		}
	}

	if total := hits + misses; total > 0 {
		stats.hitRatio = hits / total
	}

	return stats
}
