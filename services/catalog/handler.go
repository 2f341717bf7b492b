package catalogservice

import (
	"net/http"
	"strconv"

	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type CatalogHandler struct {
	Service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

func (h *CatalogHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	catalog := chi.URLParam(r, "catalog")
	includeDeleted := r.URL.Query().Get("includeDeleted") == "true"

	options, err := h.Service.ListOptions(r.Context(), catalog, includeDeleted)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": options})
}

func (h *CatalogHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	catalog := chi.URLParam(r, "catalog")

	var req OptionReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "value is required")
		return
	}

	id, err := h.Service.CreateOption(r.Context(), catalog, req.Value)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "option created successfully", "id": id})
}

func (h *CatalogHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	catalog := chi.URLParam(r, "catalog")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid option id")
		return
	}

	var req OptionReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "value is required")
		return
	}

	if err := h.Service.UpdateOption(r.Context(), catalog, id, req.Value); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "option updated successfully"})
}

func (h *CatalogHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	catalog := chi.URLParam(r, "catalog")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid option id")
		return
	}

	if err := h.Service.DeleteOption(r.Context(), catalog, id); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "option deleted successfully"})
}
