// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Workers ──

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func TestWorkers_Run_AllWorkersStart(t *testing.T) {
	var started atomic.Int32
	blocking := funcWorker(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, blocking, blocking).Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := funcWorker(func(context.Context) error { return boom })
	waiting := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	err := NewWorkers(waiting, failing).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
}

// ── JobCleanupWorker ──

type recordingCleaner struct {
	mu        sync.Mutex
	calls     int
	olderThan time.Duration
	err       error
}

func (c *recordingCleaner) CleanupJobs(_ context.Context, olderThan time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.olderThan = olderThan
	return 1, c.err
}

func (c *recordingCleaner) snapshot() (int, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls, c.olderThan
}

func TestJobCleanupWorker_RunsEveryInterval(t *testing.T) {
	cleaner := &recordingCleaner{}
	worker := NewJobCleanupWorker(cleaner, config.Workers{
		JobCleanupInterval: 5 * time.Millisecond,
		JobRetention:       24 * time.Hour,
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool {
		calls, _ := cleaner.snapshot()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()

	assert.NoError(t, <-done)
	_, olderThan := cleaner.snapshot()
	assert.Equal(t, 24*time.Hour, olderThan)
}

func TestJobCleanupWorker_KeepsRunningAfterFailure(t *testing.T) {
	cleaner := &recordingCleaner{err: errors.New("db down")}
	worker := NewJobCleanupWorker(cleaner, config.Workers{
		JobCleanupInterval: 5 * time.Millisecond,
		JobRetention:       time.Hour,
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	require.Eventually(t, func() bool {
		calls, _ := cleaner.snapshot()
		return calls >= 3
	}, time.Second, 5*time.Millisecond)
}

// ── CacheInvalidationWorker ──

type scriptedListener struct {
	calls atomic.Int32
	err   error
}

func (l *scriptedListener) Listen(ctx context.Context, purge func(context.Context)) error {
	if l.calls.Add(1) == 1 {
		purge(ctx)
		return l.err
	}
	<-ctx.Done()
	return nil
}

func TestCacheInvalidationWorker_ResubscribesAndPurges(t *testing.T) {
	listener := &scriptedListener{err: errors.New("connection reset")}
	var purges atomic.Int32
	worker := NewCacheInvalidationWorker(listener, func(context.Context) { purges.Add(1) }, logger.Nop())
	worker.delay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool { return listener.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	assert.NoError(t, <-done)
	assert.Equal(t, int32(2), purges.Load(), "one purge from the message, one after resubscribing")
}

func TestCacheInvalidationWorker_StopsWithContext(t *testing.T) {
	listener := &scriptedListener{}
	listener.calls.Store(1)
	worker := NewCacheInvalidationWorker(listener, func(context.Context) {}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, worker.Run(ctx))
}
