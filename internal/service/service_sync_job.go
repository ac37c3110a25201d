// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService MailboxSyncService
	logger      *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	observer SyncObserver
	wg       sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.SyncAll on a ticker.
// The job is idle until Start is called.
func NewSyncJob(syncService MailboxSyncService, logger *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: logger}
}

// Start implements SyncJob. The first sync runs immediately, the next ones
// every interval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			j.runOnce(jobCtx)

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

func (j *syncJob) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	report, err := j.syncService.SyncAll(ctx)

	j.mu.Lock()
	observer := j.observer
	j.mu.Unlock()
	if observer != nil && ctx.Err() == nil {
		observer(report, err)
	}

	if err != nil {
		j.logger.Error().Err(err).Str("func", "*syncJob.runOnce").Msg("background sync failed")
		return
	}
	j.logger.Info().
		Int("folders_synced", len(report.Messages)).
		Str("func", "*syncJob.runOnce").
		Msg("background sync finished")
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Observe implements SyncJob.
func (j *syncJob) Observe(fn SyncObserver) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.observer = fn
}
