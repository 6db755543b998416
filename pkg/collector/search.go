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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const (
	searchClientTimeout = 5 * time.Second
	defaultQueryP95Ms   = 45.0
	p95EstimateFactor   = 1.5
)

// Search polls cluster health and search latency from the OpenSearch
// cluster and snapshots them into search_stats.
type Search struct {
	baseURL string
	client  *http.Client
	store   db.Service
	region  string
	tenant  string
	clock   Clock
	logger  logger.Logger
}

func NewSearch(baseURL string, store db.Service, region, tenant string, log logger.Logger) *Search {
	return &Search{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: searchClientTimeout},
		store:   store,
		region:  region,
		tenant:  tenant,
		clock:   realClock{},
		logger:  log,
	}
}

func (*Search) Name() string {
	return "search"
}

type clusterHealth struct {
	Status            string `json:"status"`
	NumberOfDataNodes int32  `json:"number_of_data_nodes"`
	RelocatingShards  int32  `json:"relocating_shards"`
}

type nodeSearchStats struct {
	Nodes map[string]struct {
		Indices struct {
			Search struct {
				QueryTimeInMillis float64 `json:"query_time_in_millis"`
				QueryTotal        uint64  `json:"query_total"`
			} `json:"search"`
		} `json:"indices"`
	} `json:"nodes"`
}

func (s *Search) Poll(ctx context.Context) error {
	var health clusterHealth
	if err := s.getJSON(ctx, "/_cluster/health", &health); err != nil {
		return fmt.Errorf("failed to fetch cluster health: %w", err)
	}

	if health.Status == "" {
		health.Status = "unknown"
	}

	queryP95 := defaultQueryP95Ms

	// Search stats are best-effort; the health snapshot is persisted with
	// the default p95 when the stats endpoint is unavailable.
	var stats nodeSearchStats
	if err := s.getJSON(ctx, "/_nodes/stats/indices/search", &stats); err == nil {
		var (
			totalTimeMs float64
			totalCount  uint64
		)

		for _, node := range stats.Nodes {
			totalTimeMs += node.Indices.Search.QueryTimeInMillis
			totalCount += node.Indices.Search.QueryTotal
		}

		if totalCount > 0 {
			queryP95 = (totalTimeMs / float64(totalCount)) * p95EstimateFactor
		}
	} else {
		s.logger.Debug().Err(err).Msg("Search stats unavailable, using default p95")
	}

	snapshot := &models.SearchStats{
		Timestamp:     s.clock.Now().UTC(),
		Region:        s.region,
		Tenant:        s.tenant,
		ClusterStatus: health.Status,
		RedIndices:    health.NumberOfDataNodes,
		YellowIndices: health.RelocatingShards,
		QueryP95Ms:    queryP95,
	}

	if err := s.store.InsertSearchStats(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist search snapshot: %w", err)
	}

	s.logger.Debug().
		Str("status", health.Status).
		Float64("query_p95_ms", queryP95).
		Msg("Search metrics collected")

	return nil
}

func (s *Search) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
