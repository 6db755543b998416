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

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oplens/oplens/pkg/logger"
)

// Duration wraps time.Duration so JSON configs can use "10s" style strings.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}

		*d = Duration(parsed)

		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

// PostgresConfig describes the snapshot store connection.
type PostgresConfig struct {
	Host            string   `json:"host"`
	Port            int      `json:"port"`
	Database        string   `json:"database"`
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	SSLMode         string   `json:"ssl_mode"`
	ApplicationName string   `json:"application_name"`
	MaxConnections  int32    `json:"max_connections"`
	MinConnections  int32    `json:"min_connections"`
	ConnectTimeout  Duration `json:"connect_timeout"`
}

// RedisConfig describes the shared cache tier and the cache health source.
type RedisConfig struct {
	URL string `json:"url"`
}

// MySQLConfig describes the MySQL subsystem polled by its collector.
type MySQLConfig struct {
	DSN string `json:"dsn"`
}

// OpenSearchConfig describes the search cluster polled by its collector and
// queried for logs.
type OpenSearchConfig struct {
	URL string `json:"url"`
}

// NATSConfig describes the JetStream stream watched by the queue collector.
type NATSConfig struct {
	URL      string `json:"url"`
	Stream   string `json:"stream"`
	Consumer string `json:"consumer"`
}

// CloudWatchConfig tunes the metric source adapter.
type CloudWatchConfig struct {
	Region           string `json:"region"`
	DefaultNamespace string `json:"default_namespace"`
}

// TraceCacheConfig tunes the trace aggregation cache.
type TraceCacheConfig struct {
	TTL          Duration `json:"ttl"`
	MaxEndpoints int      `json:"max_endpoints"`
}

// CoreConfig is the top-level oplens configuration. A nil backend section
// means that backend is not configured; its collector is never started.
type CoreConfig struct {
	ListenAddr        string            `json:"listen_addr"`
	Region            string            `json:"region"`
	Tenant            string            `json:"tenant"`
	CollectorsEnabled bool              `json:"collectors_enabled"`
	CollectorInterval Duration          `json:"collector_interval"`
	Database          *PostgresConfig   `json:"database,omitempty"`
	Redis             *RedisConfig      `json:"redis,omitempty"`
	MySQL             *MySQLConfig      `json:"mysql,omitempty"`
	OpenSearch        *OpenSearchConfig `json:"opensearch,omitempty"`
	NATS              *NATSConfig       `json:"nats,omitempty"`
	CloudWatch        CloudWatchConfig  `json:"cloudwatch"`
	TraceCache        TraceCacheConfig  `json:"trace_cache"`
	Logging           *logger.Config    `json:"logging,omitempty"`
}
