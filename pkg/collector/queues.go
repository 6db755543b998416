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
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/oplens/oplens/pkg/db"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

// StreamInspector is the JetStream metadata surface the queue collector
// needs, satisfied by nats.JetStreamContext.
type StreamInspector interface {
	StreamInfo(stream string, opts ...nats.JSOpt) (*nats.StreamInfo, error)
	ConsumerInfo(stream, consumer string, opts ...nats.JSOpt) (*nats.ConsumerInfo, error)
}

// Queues polls JetStream stream and consumer state and snapshots queue
// depth and consumer lag into queue_stats.
type Queues struct {
	js       StreamInspector
	stream   string
	consumer string
	store    db.Service
	region   string
	tenant   string
	clock    Clock
	logger   logger.Logger
}

func NewQueues(js StreamInspector, stream, consumer string, store db.Service, region, tenant string, log logger.Logger) *Queues {
	return &Queues{
		js:       js,
		stream:   stream,
		consumer: consumer,
		store:    store,
		region:   region,
		tenant:   tenant,
		clock:    realClock{},
		logger:   log,
	}
}

func (*Queues) Name() string {
	return "queues"
}

func (q *Queues) Poll(ctx context.Context) error {
	info, err := q.js.StreamInfo(q.stream, nats.Context(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch stream info for %s: %w", q.stream, err)
	}

	var oldestAgeSec int64

	if info.State.Msgs > 0 && !info.State.FirstTime.IsZero() {
		if age := q.clock.Now().Sub(info.State.FirstTime); age > 0 {
			oldestAgeSec = int64(age.Seconds())
		}
	}

	// Consumer lag is best-effort; the consumer may not exist yet when the
	// stream does.
	var consumerLag int64

	if q.consumer != "" {
		ci, ciErr := q.js.ConsumerInfo(q.stream, q.consumer, nats.Context(ctx))
		if ciErr != nil {
			q.logger.Debug().Err(ciErr).
				Str("consumer", q.consumer).
				Msg("Consumer info unavailable")
		} else {
			consumerLag = int64(ci.NumPending) + int64(ci.NumAckPending)
		}
	}

	snapshot := &models.QueueStats{
		Timestamp:    q.clock.Now().UTC(),
		Region:       q.region,
		Tenant:       q.tenant,
		Depth:        int64(info.State.Msgs),
		ConsumerLag:  consumerLag,
		OldestAgeSec: oldestAgeSec,
	}

	if err := q.store.InsertQueueStats(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist queue snapshot: %w", err)
	}

	q.logger.Debug().
		Int64("depth", snapshot.Depth).
		Int64("consumer_lag", consumerLag).
		Msg("Queue metrics collected")

	return nil
}
