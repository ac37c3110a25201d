// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/models"
)

// spySyncService counts SyncAll calls.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) SyncFolders(context.Context) (*models.SyncSummary, error) {
	return &models.SyncSummary{}, nil
}

func (s *spySyncService) SyncMessages(_ context.Context, folderID string) (*models.SyncSummary, error) {
	return &models.SyncSummary{FolderID: folderID}, nil
}

func (s *spySyncService) SyncAll(context.Context) (*models.SyncReport, error) {
	s.calls.Add(1)
	return &models.SyncReport{}, s.err
}

func (s *spySyncService) ResolveFolder(_ context.Context, ref string) (string, error) {
	return ref, nil
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_RunsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SyncAll called %d times", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_ErrorsDoNotStopTheJob(t *testing.T) {
	spy := &spySyncService{err: errors.New("server unavailable")}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(15 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)
	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, calls, spy.calls.Load())
	job.Stop()
}

func TestSyncJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	// the replaced job may be cancelled before its first sync
	calls := spy.calls.Load()
	assert.GreaterOrEqual(t, calls, int64(1))
	assert.LessOrEqual(t, calls, int64(2))
}

// ── Observe ──────────────────────────────────────────────────────────────────

func TestSyncJob_ObserverSeesEveryRun(t *testing.T) {
	syncErr := errors.New("folder failed")
	spy := &spySyncService{err: syncErr}
	job := NewSyncJob(spy, logger.Nop())

	done := make(chan error, 1)
	job.Observe(func(report *models.SyncReport, err error) {
		assert.NotNil(t, report)
		select {
		case done <- err:
		default:
		}
	})

	job.Start(context.Background(), time.Hour)
	t.Cleanup(job.Stop)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, syncErr)
	case <-time.After(time.Second):
		t.Fatal("observer was not called")
	}
}

func TestSyncJob_NilObserverRemovesIt(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	var seen atomic.Int64
	job.Observe(func(*models.SyncReport, error) { seen.Add(1) })
	job.Observe(nil)

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Zero(t, seen.Load())
}
