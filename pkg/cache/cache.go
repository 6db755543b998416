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

// Package cache implements the two-tier result cache: an optional shared
// tier backed by Redis and a mandatory in-process fallback tier.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/oplens/oplens/pkg/logger"
)

// TwoTier looks up the shared tier first and falls through to the local tier
// when the shared tier is absent, misses, or is unreachable. Shared-tier
// failures are logged and never surfaced to the caller.
type TwoTier struct {
	shared SharedTier
	local  *localTier
	logger logger.Logger
}

// NewTwoTier creates the cache. shared may be nil when no distributed tier
// is configured.
func NewTwoTier(shared SharedTier, log logger.Logger) *TwoTier {
	return &TwoTier{
		shared: shared,
		local:  newLocalTier(),
		logger: log,
	}
}

func (c *TwoTier) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.shared != nil {
		data, err := c.shared.Get(ctx, key)
		if err == nil {
			return data, true
		}

		if !errors.Is(err, ErrMiss) {
			c.logger.Warn().Err(err).Str("key", key).Msg("Shared cache tier unreachable, falling back to local tier")
		}
	}

	return c.local.Get(key)
}

// Set writes to both tiers. The local tier is written even when the shared
// write succeeds, so a later shared-tier outage does not erase the value.
func (c *TwoTier) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.shared != nil {
		if err := c.shared.Set(ctx, key, value, ttl); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("Failed to write shared cache tier")
		}
	}

	c.local.Set(key, value, ttl)
}
