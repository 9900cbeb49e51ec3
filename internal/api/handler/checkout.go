package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"github.com/vfg2006/store-revenue-api/internal/usecases/checkout"
	"github.com/vfg2006/store-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/store-revenue-api/pkg/log"
	"github.com/vfg2006/store-revenue-api/pkg/middleware"
)

func CreateOrder(service checkout.Checkouter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		order, err := service.CreateOrder(r.Context(), storeID, userClaims.UserID, &req)
		if err != nil {
			writeCheckoutError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(order); err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"store_id": storeID,
				"order_id": order.ID,
			}).WithError(err).Error("checkout: falha ao codificar resposta")
		}
	})
}

func PayOrder(service checkout.Checkouter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkOrderPaid(r.Context(), orderID); err != nil {
			log.ForContext(r.Context()).WithField("order_id", orderID).WithError(err).Error("checkout: falha ao marcar pedido como pago")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao marcar pedido como pago", nil)
			return
		}

		writeJSON(w, r, map[string]string{"status": "paid"})
	})
}

func writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyOrder), errors.Is(err, checkout.ErrMissingStoreID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, checkout.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("checkout: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pedido", nil)
	}
}
