package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"github.com/vfg2006/store-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/store-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/store-revenue-api/pkg/log"
)

func GetTotalRevenue(service revenue.Revenuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.TotalRevenue(r.Context(), storeID)
		writeRevenueResponse(w, r, report, err)
	})
}

func GetRevenueByDate(service revenue.Revenuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		date := r.URL.Query().Get("date")

		report, err := service.RevenueOnDate(r.Context(), storeID, date)
		writeRevenueResponse(w, r, report, err)
	})
}

func GetCurrentMonthRevenue(service revenue.Revenuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.CurrentMonthRevenue(r.Context(), storeID)
		writeRevenueResponse(w, r, report, err)
	})
}

func GetPreviousMonthRevenue(service revenue.Revenuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.PreviousMonthRevenue(r.Context(), storeID)
		writeRevenueResponse(w, r, report, err)
	})
}

// writeRevenueResponse padroniza as respostas das métricas de receita. Relatório
// nulo sem erro (data inválida) vira um objeto vazio com status 200.
func writeRevenueResponse(w http.ResponseWriter, r *http.Request, report *domain.RevenueReport, err error) {
	logger := log.ForContext(r.Context())

	if err != nil {
		switch {
		case errors.Is(err, revenue.ErrMissingStoreID):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da loja é obrigatório", nil)

		case errors.Is(err, revenue.ErrComputationFailed):
			logger.WithError(err).Error("revenue: falha ao computar receita")
			apiErrors.WriteError(w, apiErrors.ErrRevenueComputation, "Falha ao computar receita da loja", nil)

		default:
			logger.WithError(err).Error("revenue: erro inesperado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if report == nil {
		if _, err := w.Write([]byte("{}")); err != nil {
			logger.WithError(err).Error("revenue: falha ao enviar resposta vazia")
		}
		return
	}

	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.WithFields(log.Fields{
			"store_id": report.StoreID,
			"metric":   report.Metric,
		}).WithError(err).Error("revenue: falha ao codificar resposta")
	}
}
