package domain

import "github.com/shopspring/decimal"

// Métricas de receita expostas pela API.
const (
	MetricTotalRevenue         = "totalRevenue"
	MetricRevenueByDate        = "revenueByDate"
	MetricCurrentMonthRevenue  = "currentMonthRevenue"
	MetricPreviousMonthRevenue = "previousMonthRevenue"
)

// RevenueReport é a resposta das consultas de receita. Total é sempre um
// decimal exato; a serialização JSON do shopspring/decimal preserva o texto
// decimal na borda HTTP.
type RevenueReport struct {
	StoreID string          `json:"store_id"`
	Metric  string          `json:"metric"`
	Period  string          `json:"period,omitempty"`
	Total   decimal.Decimal `json:"total"`
}
