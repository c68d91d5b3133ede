// Package services orchestrates validation, storage and analysis behind the
// HTTP and worker entrypoints.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bilancio/internal/analysis"
	"bilancio/internal/core"
	"bilancio/internal/storage"
)

// DatasetStore is the persistence surface the service needs. Both the SQLite
// repository and the in-memory store satisfy it.
type DatasetStore interface {
	CreateDataset(ctx context.Context, name, currency string, txs []core.Transaction) (int64, error)
	GetDataset(ctx context.Context, id int64) (storage.Dataset, error)
	ListTransactions(ctx context.Context, id int64) ([]core.Transaction, error)
}

// ReportPublisher notifies the report worker that a dataset was ingested.
type ReportPublisher interface {
	PublishReportRequest(ctx context.Context, datasetID int64, window int) error
}

// Report is the full analytical output for one dataset. Metrics is nil when
// the dataset spans zero months. Rolling may be empty when fewer months than
// the window exist.
type Report struct {
	DatasetID     int64
	Currency      string
	Monthly       []core.MonthlySummary
	Metrics       *core.FinancialMetrics
	Rolling       []core.RollingPoint
	Subcategories map[string][]core.SubcategoryShare
}

// subcategoryFamilies are the category families that get keyword breakdowns.
var subcategoryFamilies = []string{"Food", "Transportation", "Subscriptions"}

type AnalysisService struct {
	store     DatasetStore
	publisher ReportPublisher
	window    int
}

// NewAnalysisService wires the service. publisher may be nil when no broker
// is configured.
func NewAnalysisService(store DatasetStore, publisher ReportPublisher, window int) *AnalysisService {
	return &AnalysisService{
		store:     store,
		publisher: publisher,
		window:    window,
	}
}

// Ingest validates the raw rows, stores them as a new dataset and returns the
// full report. Validation failures reject the whole upload and nothing is
// stored.
func (s *AnalysisService) Ingest(ctx context.Context, name string, rows [][]string) (*Report, error) {
	txs, currency, err := analysis.Validate(rows)
	if err != nil {
		return nil, err
	}

	id, err := s.store.CreateDataset(ctx, name, currency, txs)
	if err != nil {
		return nil, fmt.Errorf("store dataset: %w", err)
	}

	slog.InfoContext(ctx, "Dataset ingested",
		"dataset_id", id,
		"row_count", len(txs),
		"currency", currency)

	if s.publisher != nil {
		if err := s.publisher.PublishReportRequest(ctx, id, s.window); err != nil {
			// The worker's pending-dataset scan picks it up later.
			slog.WarnContext(ctx, "Failed to publish report request",
				"dataset_id", id,
				"error", err)
		}
	}

	report, err := s.Analyze(txs, currency, s.window)
	if err != nil {
		return nil, err
	}
	report.DatasetID = id
	return report, nil
}

// ReportForDataset loads a stored dataset and recomputes its report.
func (s *AnalysisService) ReportForDataset(ctx context.Context, id int64) (*Report, error) {
	ds, err := s.store.GetDataset(ctx, id)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	report, err := s.Analyze(txs, ds.Currency, s.window)
	if err != nil {
		return nil, err
	}
	report.DatasetID = id
	return report, nil
}

// Analyze computes every report section from already-validated transactions.
func (s *AnalysisService) Analyze(txs []core.Transaction, currency string, window int) (*Report, error) {
	monthly := analysis.Summarize(txs)

	rolling, err := analysis.RollingExpenseAverage(txs, window)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Currency:      currency,
		Monthly:       monthly,
		Rolling:       rolling,
		Subcategories: make(map[string][]core.SubcategoryShare),
	}

	metrics, err := analysis.ComputeMetrics(txs, monthly)
	switch {
	case err == nil:
		report.Metrics = &metrics
	case errors.Is(err, analysis.ErrEmptyDataset):
		// Metrics stay nil for a dataset with no months.
	default:
		return nil, err
	}

	for _, family := range subcategoryFamilies {
		shares := analysis.SubcategoryBreakdown(txs, family)
		if len(shares) > 0 {
			report.Subcategories[family] = shares
		}
	}

	return report, nil
}
