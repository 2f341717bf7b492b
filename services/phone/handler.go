package phoneservice

import (
	"net/http"
	"strconv"

	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type PhoneHandler struct {
	Service PhoneService
}

func NewPhoneHandler(service PhoneService) *PhoneHandler {
	return &PhoneHandler{Service: service}
}

func (h *PhoneHandler) CreatePhoneAccount(w http.ResponseWriter, r *http.Request) {
	var req PhoneAccountReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required phone account fields")
		return
	}

	accountID, err := h.Service.CreatePhoneAccount(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "phone account created successfully", "id": accountID})
}

func (h *PhoneHandler) UpdatePhoneAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid phone account id")
		return
	}

	var req PhoneAccountReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required phone account fields")
		return
	}

	if err := h.Service.UpdatePhoneAccount(r.Context(), accountID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "phone account updated successfully"})
}

func (h *PhoneHandler) DeletePhoneAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid phone account id")
		return
	}

	if err := h.Service.DeletePhoneAccount(r.Context(), accountID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "phone account deleted successfully"})
}

func (h *PhoneHandler) GetPhoneAccounts(w http.ResponseWriter, r *http.Request) {
	// ?userId= serves the billing form's extension auto-fill lookup
	if userIDParam := r.URL.Query().Get("userId"); userIDParam != "" {
		userID, err := strconv.ParseInt(userIDParam, 10, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
			return
		}
		account, err := h.Service.GetPhoneAccountByUserID(r.Context(), userID)
		if err != nil {
			utils.RespondError(w, utils.StatusForError(err), err, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": account})
		return
	}

	accounts, err := h.Service.GetPhoneAccounts(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch phone accounts")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": accounts})
}

func (h *PhoneHandler) CreateBillingRecord(w http.ResponseWriter, r *http.Request) {
	var req BillingRecordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required billing fields")
		return
	}

	res, err := h.Service.CreateBillingRecord(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(res)
}

func (h *PhoneHandler) DeleteBillingRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid billing record id")
		return
	}

	if err := h.Service.DeleteBillingRecord(r.Context(), recordID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "billing record deleted successfully"})
}

func (h *PhoneHandler) GetBillingRecords(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageAndSize(r)
	userID, _ := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)

	list, err := h.Service.GetBillingRecords(r.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch billing records")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(list)
}
