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

// TraceStatus is the synthesized outcome of a trace.
type TraceStatus string

const (
	TraceStatusSuccess TraceStatus = "success"
	TraceStatusError   TraceStatus = "error"
)

// TraceRecord is a synthesized trace derived from per-endpoint metrics.
// Records are ephemeral; they live only inside a cached payload and are
// recomputed on cache miss.
type TraceRecord struct {
	ID        string      `json:"id"`
	Method    string      `json:"method"`
	Endpoint  string      `json:"endpoint"`
	Status    TraceStatus `json:"status"`
	Duration  int64       `json:"duration"`
	Spans     int         `json:"spans"`
	Service   string      `json:"service"`
	Timestamp string      `json:"timestamp"`
}

// TracePayload is the cached and served trace response for one namespace.
type TracePayload struct {
	Traces    []TraceRecord `json:"traces"`
	Namespace string        `json:"namespace"`
	Minutes   int           `json:"minutes"`
}
