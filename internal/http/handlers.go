package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bilancio/internal/analysis"
	"bilancio/internal/core"
	"bilancio/internal/ingest"
	"bilancio/internal/storage"
)

// Response DTOs. Amounts are serialized both as cents and as decimal units
// so consumers can pick exact arithmetic or display values.
type (
	moneyDTO struct {
		Cents int64   `json:"cents"`
		Units float64 `json:"units"`
	}

	monthlySummaryDTO struct {
		Month         string              `json:"month"`
		Label         string              `json:"label"`
		TotalIncome   moneyDTO            `json:"total_income"`
		TotalExpenses moneyDTO            `json:"total_expenses"`
		NetIncome     moneyDTO            `json:"net_income"`
		ByCategory    map[string]moneyDTO `json:"by_category"`
	}

	monthNetDTO struct {
		Month     string   `json:"month"`
		NetIncome moneyDTO `json:"net_income"`
	}

	metricsDTO struct {
		CurrentBalance        moneyDTO    `json:"current_balance"`
		AverageMonthlySavings moneyDTO    `json:"average_monthly_savings"`
		BestMonth             monthNetDTO `json:"best_month"`
		WorstMonth            monthNetDTO `json:"worst_month"`
	}

	rollingPointDTO struct {
		Month          string   `json:"month"`
		AverageExpense moneyDTO `json:"average_expense"`
	}

	subcategoryShareDTO struct {
		Subcategory string   `json:"subcategory"`
		Amount      moneyDTO `json:"amount"`
		Percentage  float64  `json:"percentage"`
	}

	reportResponse struct {
		DatasetID int64               `json:"dataset_id,omitempty"`
		Currency  string              `json:"currency,omitempty"`
		Monthly   []monthlySummaryDTO `json:"monthly_summaries"`
		// Metrics is null when the dataset spans zero months.
		Metrics       *metricsDTO                      `json:"metrics"`
		Rolling       []rollingPointDTO                `json:"rolling_expense_average"`
		Subcategories map[string][]subcategoryShareDTO `json:"subcategory_breakdowns,omitempty"`
	}

	errorResponse struct {
		Error string `json:"error"`
		Kind  string `json:"kind,omitempty"`
		Row   int    `json:"row,omitempty"`
	}
)

// handleCreateDataset ingests a multipart CSV upload under the "file" field
// and responds with the computed report.
func (s *Server) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		slog.ErrorContext(r.Context(), "Parse multipart form error", "error", err, "url", r.URL.Path)
		writeJSONError(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart request"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return
	}
	defer file.Close()

	rows, err := ingest.ReadRows(file)
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV read error", "error", err, "file", header.Filename)
		writeJSONError(w, http.StatusBadRequest, errorResponse{Error: "malformed csv: " + err.Error()})
		return
	}

	report, err := s.service.Ingest(r.Context(), header.Filename, rows)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := buildReportResponse(report)
	s.reportCache.Set(reportCacheKey(report.DatasetID), resp)
	writeJSON(w, http.StatusCreated, resp)
}

// handleDatasetReport serves the full report for a stored dataset.
func (s *Server) handleDatasetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, errorResponse{Error: "invalid dataset id"})
		return
	}

	key := reportCacheKey(id)
	if cached, found := s.reportCache.Get(key); found {
		slog.DebugContext(r.Context(), "Report cache hit", "dataset_id", id)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, err := s.service.ReportForDataset(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := buildReportResponse(report)
	s.reportCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// handleSheetsReport runs the pipeline over the configured spreadsheet.
func (s *Server) handleSheetsReport(w http.ResponseWriter, r *http.Request) {
	if s.rowSource == nil {
		writeJSONError(w, http.StatusNotFound, errorResponse{Error: "no spreadsheet configured"})
		return
	}

	rows, err := s.rowSource.ReadRows(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Spreadsheet read error", "error", err)
		writeJSONError(w, http.StatusBadGateway, errorResponse{Error: "spreadsheet read failed"})
		return
	}

	report, err := s.service.Ingest(r.Context(), "google-sheets", rows)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, buildReportResponse(report))
}

// writeServiceError maps pipeline errors onto HTTP statuses. Validation
// failures become 422 with the error kind and 1-based data row index.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		schemaErr   *analysis.SchemaError
		valueErr    *analysis.ValueError
		dateErr     *analysis.DateError
		currencyErr *analysis.CurrencyError
	)
	switch {
	case errors.Is(err, analysis.ErrEmptyFile):
		writeJSONError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "empty_file"})
	case errors.As(err, &schemaErr):
		writeJSONError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "schema", Row: schemaErr.Row})
	case errors.As(err, &valueErr):
		writeJSONError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "value", Row: valueErr.Row})
	case errors.As(err, &dateErr):
		writeJSONError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "date", Row: dateErr.Row})
	case errors.As(err, &currencyErr):
		writeJSONError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "currency", Row: currencyErr.Row})
	case errors.Is(err, storage.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "url", r.URL.Path)
		writeJSONError(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func reportCacheKey(datasetID int64) string {
	return "report:" + strconv.FormatInt(datasetID, 10)
}

func toMoneyDTO(m core.Money) moneyDTO {
	return moneyDTO{Cents: m.Cents, Units: m.Units()}
}
