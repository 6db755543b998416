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

package logsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplens/oplens/pkg/logger"
)

func TestFindByTraceReturnsLogs(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/logs-*/_search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hits": {"hits": [
				{"_source": {"timestamp": "2025-06-01T12:00:00Z", "level": "INFO",
					"service": "api-gateway", "message": "request started", "endpoint": "create-vault"}},
				{"_source": {"timestamp": "2025-06-01T12:00:01Z", "level": "ERROR",
					"service": "api-gateway", "message": "request failed", "endpoint": "create-vault"}}
			]}
		}`))
	}))
	defer srv.Close()

	searcher := NewSearcher(srv.URL, logger.NewTestLogger())
	resp := searcher.FindByTrace(context.Background(), "abc123")

	require.Equal(t, "abc123", resp.TraceID)
	require.Len(t, resp.Logs, 2)
	assert.Equal(t, "request started", resp.Logs[0].Message)
	assert.Equal(t, "ERROR", resp.Logs[1].Level)

	// The query matches the trace ID, sorts by timestamp ascending and caps
	// the page size.
	assert.Equal(t, float64(maxHits), captured["size"])

	match := captured["query"].(map[string]interface{})["match"].(map[string]interface{})
	assert.Equal(t, "abc123", match["trace_id"])
}

func TestFindByTraceBackendUnavailable(t *testing.T) {
	searcher := NewSearcher("http://127.0.0.1:1", logger.NewTestLogger())
	resp := searcher.FindByTrace(context.Background(), "abc123")

	require.Equal(t, "abc123", resp.TraceID)
	require.Empty(t, resp.Logs)
	require.NotNil(t, resp.Logs)
}

func TestFindByTraceNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	searcher := NewSearcher(srv.URL, logger.NewTestLogger())
	resp := searcher.FindByTrace(context.Background(), "abc123")

	require.Empty(t, resp.Logs)
}

func TestFindByTraceMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": "not an object"`))
	}))
	defer srv.Close()

	searcher := NewSearcher(srv.URL, logger.NewTestLogger())
	resp := searcher.FindByTrace(context.Background(), "abc123")

	require.Empty(t, resp.Logs)
}
