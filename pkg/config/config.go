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

// Package config loads the service configuration from a JSON file and
// applies environment overrides. Environment variables win over the file so
// deployments can point one image at different backends.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/oplens/oplens/pkg/models"
)

const (
	defaultListenAddr = ":8080"
	defaultRegion     = "us-east-1"
	defaultTenant     = "enterprise_123"
	defaultNamespace  = "enterprise/api-gateway"
)

// Loader loads configuration from a source into dst.
type Loader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// FileLoader loads configuration from a local JSON file.
type FileLoader struct{}

// Load implements Loader by reading and unmarshaling a JSON file.
func (*FileLoader) Load(_ context.Context, path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// Load reads the config file at path, applies environment overrides and
// fills defaults. An empty path skips the file and builds the config from
// environment and defaults alone.
func Load(ctx context.Context, path string) (*models.CoreConfig, error) {
	cfg := &models.CoreConfig{}

	if path != "" {
		loader := &FileLoader{}
		if err := loader.Load(ctx, path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *models.CoreConfig) {
	if v := os.Getenv("OPLENS_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	if v := os.Getenv("OPLENS_REGION"); v != "" {
		cfg.Region = v
	}

	if v := os.Getenv("OPLENS_TENANT"); v != "" {
		cfg.Tenant = v
	}

	if v := os.Getenv("COLLECTORS_ENABLED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.CollectorsEnabled = parsed
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if pg, err := parsePostgresURL(v); err == nil {
			cfg.Database = pg
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis = &models.RedisConfig{URL: v}
	}

	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.MySQL = &models.MySQLConfig{DSN: v}
	}

	if v := os.Getenv("OPENSEARCH_URL"); v != "" {
		cfg.OpenSearch = &models.OpenSearchConfig{URL: v}
	}

	if v := os.Getenv("NATS_URL"); v != "" {
		if cfg.NATS == nil {
			cfg.NATS = &models.NATSConfig{}
		}

		cfg.NATS.URL = v
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.CloudWatch.Region = v
	}
}

func applyDefaults(cfg *models.CoreConfig) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}

	if cfg.Tenant == "" {
		cfg.Tenant = defaultTenant
	}

	if cfg.CloudWatch.Region == "" {
		cfg.CloudWatch.Region = cfg.Region
	}

	if cfg.CloudWatch.DefaultNamespace == "" {
		cfg.CloudWatch.DefaultNamespace = defaultNamespace
	}

	if cfg.NATS != nil && cfg.NATS.Stream == "" {
		cfg.NATS.Stream = "events"
	}
}

// parsePostgresURL converts a postgres:// URL into the structured form the
// pool builder expects.
func parsePostgresURL(raw string) (*models.PostgresConfig, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}

	pg := &models.PostgresConfig{
		Host:     u.Hostname(),
		Database: strings.TrimPrefix(u.Path, "/"),
	}

	if port := u.Port(); port != "" {
		if parsed, perr := strconv.Atoi(port); perr == nil {
			pg.Port = parsed
		}
	}

	if u.User != nil {
		pg.Username = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			pg.Password = pw
		}
	}

	if mode := u.Query().Get("sslmode"); mode != "" {
		pg.SSLMode = mode
	}

	return pg, nil
}
