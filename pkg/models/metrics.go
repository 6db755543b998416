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

// Package models contains the shared data types used across oplens packages.
package models

import "time"

// MetricQuery describes a single query against the external metric source.
// Queries are built per call and never mutated after construction.
type MetricQuery struct {
	Namespace      string
	MetricName     string
	DimensionName  string
	DimensionValue string
	Stat           string
	Start          time.Time
	End            time.Time
	PeriodSeconds  int32
}

// MetricSample is one point of a time series. Timestamp is epoch milliseconds.
// Sequences returned by the metric source are sorted ascending by Timestamp.
type MetricSample struct {
	Timestamp int64   `json:"ts"`
	Value     float64 `json:"value"`
}

// TimeSeriesResponse is the serialized shape returned for time-series queries.
type TimeSeriesResponse struct {
	Namespace string         `json:"namespace"`
	Metric    string         `json:"metric"`
	Endpoint  string         `json:"endpoint"`
	Stat      string         `json:"stat"`
	Minutes   int            `json:"minutes"`
	Data      []MetricSample `json:"data"`
}
