// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
)

// SyncWorker keeps the local cache fresh by driving a [service.SyncJob]
// for as long as its context lives.
type SyncWorker struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(job service.SyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{job: job, interval: interval, logger: logger}
}

func (w *SyncWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")
	w.job.Start(ctx, w.interval)

	<-ctx.Done()

	w.job.Stop()
	w.logger.Info().Msg("sync worker stopped")
	return nil
}
