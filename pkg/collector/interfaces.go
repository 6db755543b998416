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

package collector

import (
	"context"
	"time"
)

// Collector polls one external subsystem and persists a point-in-time
// snapshot. A Poll error covers both the subsystem query and the snapshot
// insert; the scheduler logs it and the next cycle is the retry.
type Collector interface {
	Name() string
	Poll(ctx context.Context) error
}

// Clock abstracts time for testing.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts time.Ticker for testing.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
