package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bilancio/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}

// buildReportResponse converts the service report into wire DTOs. Slices are
// always present in the output, even when empty, so consumers can iterate
// without null checks.
func buildReportResponse(report *services.Report) reportResponse {
	resp := reportResponse{
		DatasetID: report.DatasetID,
		Currency:  report.Currency,
		Monthly:   make([]monthlySummaryDTO, 0, len(report.Monthly)),
		Rolling:   make([]rollingPointDTO, 0, len(report.Rolling)),
	}

	for _, ms := range report.Monthly {
		dto := monthlySummaryDTO{
			Month:         ms.Month.String(),
			Label:         ms.Month.Label(),
			TotalIncome:   toMoneyDTO(ms.TotalIncome),
			TotalExpenses: toMoneyDTO(ms.TotalExpenses),
			NetIncome:     toMoneyDTO(ms.NetIncome),
			ByCategory:    make(map[string]moneyDTO, len(ms.ByCategory)),
		}
		for cat, amount := range ms.ByCategory {
			dto.ByCategory[cat] = toMoneyDTO(amount)
		}
		resp.Monthly = append(resp.Monthly, dto)
	}

	if report.Metrics != nil {
		resp.Metrics = &metricsDTO{
			CurrentBalance:        toMoneyDTO(report.Metrics.CurrentBalance),
			AverageMonthlySavings: toMoneyDTO(report.Metrics.AverageMonthlySavings),
			BestMonth: monthNetDTO{
				Month:     report.Metrics.BestMonth.Month.String(),
				NetIncome: toMoneyDTO(report.Metrics.BestMonth.NetIncome),
			},
			WorstMonth: monthNetDTO{
				Month:     report.Metrics.WorstMonth.Month.String(),
				NetIncome: toMoneyDTO(report.Metrics.WorstMonth.NetIncome),
			},
		}
	}

	for _, rp := range report.Rolling {
		resp.Rolling = append(resp.Rolling, rollingPointDTO{
			Month:          rp.Month.String(),
			AverageExpense: toMoneyDTO(rp.AverageExpense),
		})
	}

	if len(report.Subcategories) > 0 {
		resp.Subcategories = make(map[string][]subcategoryShareDTO, len(report.Subcategories))
		for family, shares := range report.Subcategories {
			out := make([]subcategoryShareDTO, 0, len(shares))
			for _, share := range shares {
				out = append(out, subcategoryShareDTO{
					Subcategory: share.Subcategory,
					Amount:      toMoneyDTO(share.Amount),
					Percentage:  share.Percentage,
				})
			}
			resp.Subcategories[family] = out
		}
	}

	return resp
}
