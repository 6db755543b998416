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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oplens/oplens/pkg/logger"
)

type fakeTicker struct {
	c chan time.Time
}

func (f *fakeTicker) Chan() <-chan time.Time {
	return f.c
}

func (f *fakeTicker) Stop() {}

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeClock) Ticker(_ time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{c: make(chan time.Time, 1)}
	f.tickers = append(f.tickers, t)

	return t
}

func (f *fakeClock) tickerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.tickers)
}

// tickAll fires every registered ticker once, as if the shared interval
// elapsed for all loops at the same wall-clock time.
func (f *fakeClock) tickAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tickers {
		t.c <- time.Now()
	}
}

type scriptedCollector struct {
	name     string
	err      error
	panicMsg string

	mu     sync.Mutex
	calls  int
	polled chan struct{}
}

func newScriptedCollector(name string) *scriptedCollector {
	return &scriptedCollector{name: name, polled: make(chan struct{}, 16)}
}

func (c *scriptedCollector) Name() string {
	return c.name
}

func (c *scriptedCollector) Poll(_ context.Context) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	c.polled <- struct{}{}

	if c.panicMsg != "" {
		panic(c.panicMsg)
	}

	return c.err
}

func (c *scriptedCollector) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

func waitPolled(t *testing.T, c *scriptedCollector) {
	t.Helper()

	select {
	case <-c.polled:
	case <-time.After(2 * time.Second):
		t.Fatalf("collector %s did not poll in time", c.name)
	}
}

func TestSchedulerPollsImmediatelyAndOnTick(t *testing.T) {
	clock := newFakeClock()
	sched := NewScheduler(10*time.Second, clock, logger.NewTestLogger())
	job := newScriptedCollector("job")
	sched.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	waitPolled(t, job)

	require.Eventually(t, func() bool { return clock.tickerCount() == 1 },
		2*time.Second, 5*time.Millisecond)

	clock.tickAll()
	waitPolled(t, job)

	cancel()
	sched.Wait()

	require.Equal(t, 2, job.callCount())
}

func TestSchedulerFailingCollectorKeepsRunning(t *testing.T) {
	clock := newFakeClock()
	sched := NewScheduler(10*time.Second, clock, logger.NewTestLogger())

	failing := newScriptedCollector("failing")
	failing.err = errors.New("subsystem unreachable")
	healthy := newScriptedCollector("healthy")

	sched.Register(failing)
	sched.Register(healthy)

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	waitPolled(t, failing)
	waitPolled(t, healthy)

	require.Eventually(t, func() bool { return clock.tickerCount() == 2 },
		2*time.Second, 5*time.Millisecond)

	// The shared interval elapses once for every loop. The failing job's
	// error must not prevent either loop's next cycle.
	clock.tickAll()
	waitPolled(t, failing)
	waitPolled(t, healthy)

	cancel()
	sched.Wait()

	require.Equal(t, 2, failing.callCount())
	require.Equal(t, 2, healthy.callCount())
}

func TestSchedulerPanickingCollectorDoesNotStopSiblings(t *testing.T) {
	clock := newFakeClock()
	sched := NewScheduler(10*time.Second, clock, logger.NewTestLogger())

	panicking := newScriptedCollector("panicking")
	panicking.panicMsg = "nil map write"
	sibling := newScriptedCollector("sibling")

	sched.Register(panicking)
	sched.Register(sibling)

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	waitPolled(t, panicking)
	waitPolled(t, sibling)

	require.Eventually(t, func() bool { return clock.tickerCount() == 2 },
		2*time.Second, 5*time.Millisecond)

	clock.tickAll()
	waitPolled(t, panicking)
	waitPolled(t, sibling)

	cancel()
	sched.Wait()

	require.Equal(t, 2, panicking.callCount())
	require.Equal(t, 2, sibling.callCount())
}

func TestSchedulerDefaults(t *testing.T) {
	sched := NewScheduler(0, nil, logger.NewTestLogger())

	require.Equal(t, defaultInterval, sched.interval)
	require.NotNil(t, sched.clock)
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	clock := newFakeClock()
	sched := NewScheduler(10*time.Second, clock, logger.NewTestLogger())
	job := newScriptedCollector("job")
	sched.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	waitPolled(t, job)
	cancel()

	done := make(chan struct{})

	go func() {
		sched.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
