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

//go:generate mockgen -destination=mock_cache.go -package=cache github.com/oplens/oplens/pkg/cache SharedTier

package cache

import (
	"context"
	"time"
)

// Cache is the two-tier get/set contract used by the trace aggregator.
// Callers racing to repopulate the same key after a miss is accepted;
// recomputation is idempotent so no single-flight lock is held.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// SharedTier is the optional distributed tier. Connectivity failures must be
// returned as errors so the two-tier cache can degrade to local-only reads.
type SharedTier interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
