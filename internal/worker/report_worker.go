// Package worker computes and stores monthly reports for datasets queued
// by the ingestion API.
package worker

import (
	"context"
	"fmt"

	"bilancio/internal/amqp"
	"bilancio/internal/analysis"
	"bilancio/internal/log"
	"bilancio/internal/storage"
)

type ReportWorker struct {
	storage   *storage.SQLiteRepository
	window    int
	batchSize int
	logger    *log.Logger
}

func NewReportWorker(repo *storage.SQLiteRepository, window, batchSize int) *ReportWorker {
	return &ReportWorker{
		storage:   repo,
		window:    window,
		batchSize: batchSize,
		logger:    log.New(log.DefaultConfig()).WithComponent(log.ComponentWorker),
	}
}

// HandleReportRequest recomputes the monthly report for a single dataset.
// Errors propagate so the delivery is requeued; the failures here are
// storage ones, which are transient.
func (w *ReportWorker) HandleReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	if err := w.report(ctx, msg.DatasetID); err != nil {
		return fmt.Errorf("report dataset %d: %w", msg.DatasetID, err)
	}
	return nil
}

// ProcessPendingDatasets reports datasets that never got a message, for
// example because the broker was down when they were ingested.
func (w *ReportWorker) ProcessPendingDatasets(ctx context.Context) error {
	ids, err := w.storage.GetPendingDatasets(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending datasets: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	w.logger.InfoContext(ctx, "Processing pending datasets", "count", len(ids))

	for _, id := range ids {
		if err := w.report(ctx, id); err != nil {
			w.logger.ErrorContext(ctx, "Failed to build report",
				log.FieldDatasetID, id,
				log.FieldError, err)
			if markErr := w.storage.MarkReportError(ctx, id); markErr != nil {
				w.logger.ErrorContext(ctx, "Failed to mark dataset as errored",
					log.FieldDatasetID, id,
					log.FieldError, markErr)
			}
		}
	}

	return nil
}

func (w *ReportWorker) report(ctx context.Context, datasetID int64) error {
	txs, err := w.storage.ListTransactions(ctx, datasetID)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	monthly := analysis.Summarize(txs)
	if err := w.storage.SaveMonthlyReport(ctx, datasetID, monthly); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if err := w.storage.MarkReported(ctx, datasetID); err != nil {
		return fmt.Errorf("mark reported: %w", err)
	}

	w.logger.InfoContext(ctx, "Monthly report stored",
		log.FieldOperation, log.OpReport,
		log.FieldDatasetID, datasetID,
		"month_count", len(monthly))

	return nil
}
