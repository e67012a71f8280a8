package response

import "orcafacil/internal/usecase"

type DashboardSummaryResponse struct {
	TotalCount     int     `json:"totalCount"`
	TotalValue     float64 `json:"totalValue"`
	ThisMonthCount int     `json:"thisMonthCount"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalCount:     s.TotalCount,
		TotalValue:     s.TotalValue.Float64(),
		ThisMonthCount: s.ThisMonthCount,
	}
}
