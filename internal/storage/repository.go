package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bilancio/internal/core"

	_ "modernc.org/sqlite"
)

// Report status values for a dataset.
const (
	StatusPending  = "pending"
	StatusReported = "reported"
	StatusError    = "error"
)

const dateLayout = "2006-01-02"

// Dataset is one stored upload: the validated transaction batch plus
// bookkeeping for the report worker.
type Dataset struct {
	ID           int64
	Name         string
	Currency     string
	RowCount     int
	ReportStatus string
	CreatedAt    time.Time
}

// MonthlyReportRow is one persisted month of a dataset's report.
type MonthlyReportRow struct {
	Month        core.MonthKey
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateDataset stores a validated batch atomically and returns its ID.
func (r *SQLiteRepository) CreateDataset(ctx context.Context, name, currency string, txs []core.Transaction) (int64, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		`INSERT INTO datasets (name, currency, row_count) VALUES (?, ?, ?)`,
		name, currency, len(txs))
	if err != nil {
		return 0, fmt.Errorf("insert dataset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("dataset id: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions (dataset_id, position, tx_date, description, category, value_cents)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for i, tx := range txs {
		if _, err := stmt.ExecContext(ctx, id, i,
			tx.Date.Format(dateLayout), tx.Description, tx.Category, tx.Value.Cents); err != nil {
			return 0, fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("commit dataset: %w", err)
	}

	slog.InfoContext(ctx, "Dataset saved to SQLite",
		"dataset_id", id,
		"name", name,
		"row_count", len(txs),
		"currency", currency)

	return id, nil
}

// GetDataset retrieves a dataset's bookkeeping record.
func (r *SQLiteRepository) GetDataset(ctx context.Context, id int64) (Dataset, error) {
	var d Dataset
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, currency, row_count, report_status, created_at
		 FROM datasets WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Currency, &d.RowCount, &d.ReportStatus, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return Dataset{}, fmt.Errorf("get dataset %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("get dataset %d: %w", id, err)
	}
	return d, nil
}

// ListTransactions returns a dataset's transactions in upload order.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, datasetID int64) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tx_date, description, category, value_cents
		 FROM transactions WHERE dataset_id = ? ORDER BY position`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for dataset %d: %w", datasetID, err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			dateStr     string
			description string
			category    string
			cents       int64
		)
		if err := rows.Scan(&dateStr, &description, &category, &cents); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		txs = append(txs, core.Transaction{
			Date:        core.Date{Time: date},
			Description: description,
			Category:    category,
			Value:       core.Money{Cents: cents},
		})
	}
	return txs, rows.Err()
}

// SaveMonthlyReport replaces the persisted monthly report for a dataset.
func (r *SQLiteRepository) SaveMonthlyReport(ctx context.Context, datasetID int64, monthly []core.MonthlySummary) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM monthly_reports WHERE dataset_id = ?`, datasetID); err != nil {
		return fmt.Errorf("clear monthly report: %w", err)
	}

	for _, m := range monthly {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO monthly_reports (dataset_id, year, month, income_cents, expense_cents, net_cents)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			datasetID, m.Month.Year, m.Month.Month,
			m.TotalIncome.Cents, m.TotalExpenses.Cents, m.NetIncome.Cents); err != nil {
			return fmt.Errorf("insert monthly report %s: %w", m.Month, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit monthly report: %w", err)
	}

	slog.InfoContext(ctx, "Monthly report saved", "dataset_id", datasetID, "months", len(monthly))
	return nil
}

// ListMonthlyReport returns the persisted report rows in chronological order.
func (r *SQLiteRepository) ListMonthlyReport(ctx context.Context, datasetID int64) ([]MonthlyReportRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT year, month, income_cents, expense_cents, net_cents
		 FROM monthly_reports WHERE dataset_id = ? ORDER BY year, month`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list monthly report for dataset %d: %w", datasetID, err)
	}
	defer rows.Close()

	var out []MonthlyReportRow
	for rows.Next() {
		var row MonthlyReportRow
		if err := rows.Scan(&row.Month.Year, &row.Month.Month,
			&row.IncomeCents, &row.ExpenseCents, &row.NetCents); err != nil {
			return nil, fmt.Errorf("scan monthly report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetPendingDatasets returns datasets whose report has not been computed yet.
// Backup path for the worker in case report request messages are lost.
func (r *SQLiteRepository) GetPendingDatasets(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM datasets WHERE report_status = ? ORDER BY id LIMIT ?`,
		StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending datasets: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan dataset id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkReported marks a dataset's report as computed.
func (r *SQLiteRepository) MarkReported(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE datasets SET report_status = ? WHERE id = ?`, StatusReported, id); err != nil {
		return fmt.Errorf("mark dataset reported: %w", err)
	}
	slog.InfoContext(ctx, "Dataset marked as reported", "dataset_id", id)
	return nil
}

// MarkReportError marks a dataset's report computation as failed.
func (r *SQLiteRepository) MarkReportError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE datasets SET report_status = ? WHERE id = ?`, StatusError, id); err != nil {
		return fmt.Errorf("mark dataset report error: %w", err)
	}
	slog.WarnContext(ctx, "Dataset marked with report error", "dataset_id", id)
	return nil
}
