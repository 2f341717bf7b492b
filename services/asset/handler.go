package assetservice

import (
	"net/http"
	"strconv"

	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type AssetHandler struct {
	Service AssetService
}

func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{Service: service}
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req AssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required asset fields")
		return
	}

	asset, err := h.Service.CreateAssetWithSpecs(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "asset created successfully", "data": asset})
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	var req AssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required asset fields")
		return
	}

	asset, err := h.Service.UpdateAssetWithSpecs(r.Context(), assetID, req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "asset updated successfully", "data": asset})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	asset, err := h.Service.GetAssetByID(r.Context(), assetID)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": asset})
}

func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageAndSize(r)
	categoryID, _ := strconv.ParseInt(r.URL.Query().Get("categoryId"), 10, 64)

	filter := AssetFilter{
		NamaAsset:  r.URL.Query().Get("namaAsset"),
		NomorSeri:  r.URL.Query().Get("nomorSeri"),
		Status:     r.URL.Query().Get("statusAsset"),
		CategoryID: categoryID,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	list, err := h.Service.GetAssetsWithFilters(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch assets")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(list)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	if err := h.Service.DeleteAsset(r.Context(), assetID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "asset deleted successfully"})
}
