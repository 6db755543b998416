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

// Package logsearch correlates trace IDs with application log lines stored
// in the OpenSearch cluster.
package logsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const (
	indexPattern  = "logs-*"
	maxHits       = 50
	searchTimeout = 2 * time.Second
)

// Searcher looks up log lines by trace ID. Lookups are strictly
// best-effort; any backend failure yields an empty result so the trace
// view renders without logs rather than erroring.
type Searcher struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewSearcher(baseURL string, log logger.Logger) *Searcher {
	return &Searcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: searchTimeout},
		logger:  log,
	}
}

type searchHits struct {
	Hits struct {
		Hits []struct {
			Source models.LogRecord `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// FindByTrace returns the log lines recorded for a trace ID, oldest first.
func (s *Searcher) FindByTrace(ctx context.Context, traceID string) *models.LogSearchResponse {
	resp := &models.LogSearchResponse{
		TraceID: traceID,
		Logs:    []models.LogRecord{},
	}

	query := map[string]interface{}{
		"size": maxHits,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"trace_id": traceID,
			},
		},
		"sort": []map[string]interface{}{
			{"timestamp": map[string]interface{}{"order": "asc"}},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode log search query")
		return resp
	}

	url := fmt.Sprintf("%s/%s/_search", s.baseURL, indexPattern)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to build log search request")
		return resp
	}

	req.Header.Set("Content-Type", "application/json")

	httpResp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn().Err(err).Str("trace_id", traceID).Msg("Log search unavailable")
		return resp
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		s.logger.Warn().
			Int("status", httpResp.StatusCode).
			Str("trace_id", traceID).
			Msg("Log search returned non-OK status")

		return resp
	}

	var hits searchHits
	if err := json.NewDecoder(httpResp.Body).Decode(&hits); err != nil {
		s.logger.Warn().Err(err).Str("trace_id", traceID).Msg("Failed to decode log search response")
		return resp
	}

	for _, hit := range hits.Hits.Hits {
		resp.Logs = append(resp.Logs, hit.Source)
	}

	return resp
}
