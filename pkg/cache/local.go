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

package cache

import (
	"sync"
	"time"
)

type localEntry struct {
	data      []byte
	expiresAt time.Time
}

// localTier is the mandatory in-process fallback tier. Expired entries are
// invalidated lazily: Get treats them as a miss but does not remove them,
// keeping the read path free of write locks. The next Set for the key
// overwrites the stale entry.
type localTier struct {
	mu      sync.RWMutex
	entries map[string]localEntry
	now     func() time.Time
}

func newLocalTier() *localTier {
	return &localTier{
		entries: make(map[string]localEntry),
		now:     time.Now,
	}
}

func (l *localTier) Get(key string) ([]byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.entries[key]
	if !ok {
		return nil, false
	}

	if !l.now().Before(entry.expiresAt) {
		return nil, false
	}

	return entry.data, true
}

func (l *localTier) Set(key string, value []byte, ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[key] = localEntry{
		data:      value,
		expiresAt: l.now().Add(ttl),
	}
}

// len reports the number of stored entries, including expired ones.
func (l *localTier) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
