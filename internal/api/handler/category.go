package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-revenue-api/internal/domain"
	"github.com/vfg2006/store-revenue-api/internal/usecases/category"
	"github.com/vfg2006/store-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/store-revenue-api/pkg/log"
)

func ListCategories(service category.Categorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var filter *domain.CategoryFilter
		if gender := r.URL.Query().Get("gender"); gender != "" {
			filter = &domain.CategoryFilter{Gender: &gender}
		}

		categories, err := service.List(r.Context(), storeID, filter)
		if err != nil {
			writeCategoryError(w, r, err)
			return
		}

		writeJSON(w, r, categories)
	})
}

func GetCategory(service category.Categorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		result, err := service.Get(r.Context(), params.ByName("id"), params.ByName("category_id"))
		if err != nil {
			writeCategoryError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	})
}

func CreateCategory(service category.Categorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Create(r.Context(), storeID, &req)
		if err != nil {
			writeCategoryError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("categories: falha ao codificar resposta")
		}
	})
}

func UpdateCategory(service category.Categorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req domain.CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Update(r.Context(), params.ByName("id"), params.ByName("category_id"), &req)
		if err != nil {
			writeCategoryError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	})
}

func DeleteCategory(service category.Categorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		if err := service.Delete(r.Context(), params.ByName("id"), params.ByName("category_id")); err != nil {
			writeCategoryError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeCategoryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Categoria não encontrada", nil)

	case errors.Is(err, category.ErrMissingStoreID), errors.Is(err, category.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("categories: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar categorias", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: falha ao codificar resposta")
	}
}
