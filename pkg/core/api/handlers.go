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

package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/oplens/oplens/pkg/cloudwatch"
	"github.com/oplens/oplens/pkg/models"
)

const (
	defaultWindowMinutes = 60
	defaultTopQueryLimit = 10
	defaultStat          = "Average"
	defaultMetric        = "LatencyMs"
)

type errorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(errorResponse{Message: message, Status: statusCode})
}

func queryInt(q url.Values, key string, fallback int) int {
	if raw := q.Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}

	return fallback
}

func queryString(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}

	return fallback
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) getTraces(w http.ResponseWriter, r *http.Request) {
	if s.traces == nil {
		writeError(w, "trace aggregation not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	ns := queryString(q, "ns", s.defaultNamespace)
	minutes := queryInt(q, "minutes", defaultWindowMinutes)

	payload, err := s.traces.GetTracesJSON(r.Context(), ns, minutes)
	if err != nil {
		s.logger.Error().Err(err).Str("namespace", ns).Msg("Trace aggregation failed")
		writeError(w, "failed to aggregate traces", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) getCloudWatchSummary(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	ns := queryString(q, "ns", s.defaultNamespace)
	endpoint := queryString(q, "endpoint", "/search")
	minutes := queryInt(q, "minutes", defaultWindowMinutes)

	s.writeJSON(w, s.dashboard.CloudWatchSummary(r.Context(), ns, endpoint, minutes))
}

func (s *Server) getTimeSeries(w http.ResponseWriter, r *http.Request) {
	if s.series == nil {
		writeError(w, "metric source not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	metric := queryString(q, "metric", defaultMetric)
	minutes := queryInt(q, "minutes", defaultWindowMinutes)
	end := time.Now()

	query := &models.MetricQuery{
		Namespace:      queryString(q, "ns", s.defaultNamespace),
		MetricName:     metric,
		DimensionName:  queryString(q, "dimension", cloudwatch.DimensionFor(metric)),
		DimensionValue: queryString(q, "endpoint", ""),
		Stat:           queryString(q, "stat", defaultStat),
		Start:          end.Add(-time.Duration(minutes) * time.Minute),
		End:            end,
	}

	samples, err := s.series.GetTimeSeries(r.Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Str("metric", metric).Msg("Time series query failed")
		writeError(w, "failed to query time series", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, models.TimeSeriesResponse{
		Namespace: query.Namespace,
		Metric:    metric,
		Endpoint:  query.DimensionValue,
		Stat:      query.Stat,
		Minutes:   minutes,
		Data:      samples,
	})
}

func (s *Server) getLogsByTrace(w http.ResponseWriter, r *http.Request) {
	if s.logs == nil {
		writeError(w, "log search not configured", http.StatusServiceUnavailable)
		return
	}

	traceID := mux.Vars(r)["traceID"]
	if traceID == "" {
		writeError(w, "trace ID is required", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, s.logs.FindByTrace(r.Context(), traceID))
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.InfraSummary(r.Context()))
}

func (s *Server) getPGMetrics(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.PGMetrics(r.Context()))
}

func (s *Server) getTopPGQueries(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	limit := queryInt(r.URL.Query(), "limit", defaultTopQueryLimit)
	s.writeJSON(w, map[string]interface{}{
		"queries": s.dashboard.TopPGQueries(r.Context(), limit),
	})
}

func (s *Server) getMySQLMetrics(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.MySQLMetrics(r.Context()))
}

func (s *Server) getTopMySQLQueries(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	limit := queryInt(r.URL.Query(), "limit", defaultTopQueryLimit)
	s.writeJSON(w, map[string]interface{}{
		"queries": s.dashboard.TopMySQLQueries(r.Context(), limit),
	})
}

func (s *Server) getRedisMetrics(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.RedisMetrics(r.Context()))
}

func (s *Server) getSearchMetrics(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.SearchMetrics(r.Context()))
}

func (s *Server) getQueueMetrics(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, "summary not configured", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.dashboard.QueueMetrics(r.Context()))
}
