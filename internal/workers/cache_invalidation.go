// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
)

const resubscribeDelay = 5 * time.Second

// CacheInvalidationWorker purges the local directory cache whenever another
// instance announces a directory change.
type CacheInvalidationWorker struct {
	listener ChangeListener
	purge    func(context.Context)
	delay    time.Duration
	logger   *logger.Logger
}

func NewCacheInvalidationWorker(listener ChangeListener, purge func(context.Context), log *logger.Logger) *CacheInvalidationWorker {
	return &CacheInvalidationWorker{
		listener: listener,
		purge:    purge,
		delay:    resubscribeDelay,
		logger:   log.WithComponent("cache-invalidation"),
	}
}

// Run keeps a subscription open until ctx is done. A lost subscription is
// re-established after a delay, and the cache is purged first since changes
// may have been missed meanwhile.
func (w *CacheInvalidationWorker) Run(ctx context.Context) error {
	for {
		err := w.listener.Listen(ctx, w.purge)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			w.logger.Err(err).Str("func", "CacheInvalidationWorker.Run").Msg("subscription lost")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.delay):
			w.purge(ctx)
		}
	}
}
