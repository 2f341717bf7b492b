package ispservice

import (
	"net/http"
	"strconv"

	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type IspHandler struct {
	Service IspService
}

func NewIspHandler(service IspService) *IspHandler {
	return &IspHandler{Service: service}
}

func (h *IspHandler) CreateIsp(w http.ResponseWriter, r *http.Request) {
	var req IspReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required isp fields")
		return
	}

	ispID, err := h.Service.CreateIsp(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "isp created successfully", "id": ispID})
}

func (h *IspHandler) UpdateIsp(w http.ResponseWriter, r *http.Request) {
	ispID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid isp id")
		return
	}

	var req IspReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required isp fields")
		return
	}

	if err := h.Service.UpdateIsp(r.Context(), ispID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "isp updated successfully"})
}

func (h *IspHandler) DeleteIsp(w http.ResponseWriter, r *http.Request) {
	ispID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid isp id")
		return
	}

	if err := h.Service.DeleteIsp(r.Context(), ispID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "isp deleted successfully"})
}

func (h *IspHandler) GetIsps(w http.ResponseWriter, r *http.Request) {
	isps, err := h.Service.GetIsps(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch isps")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": isps})
}

func (h *IspHandler) CreateIspReport(w http.ResponseWriter, r *http.Request) {
	var req IspReportReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required report fields")
		return
	}

	reportID, err := h.Service.CreateIspReport(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "isp report created successfully", "id": reportID})
}

func (h *IspHandler) UpdateIspReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid report id")
		return
	}

	var req IspReportReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required report fields")
		return
	}

	if err := h.Service.UpdateIspReport(r.Context(), reportID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "isp report updated successfully"})
}

func (h *IspHandler) DeleteIspReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid report id")
		return
	}

	if err := h.Service.DeleteIspReport(r.Context(), reportID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "isp report deleted successfully"})
}

func (h *IspHandler) GetIspReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.GetIspReports(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch isp reports")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": reports})
}

func (h *IspHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	var req ProblemReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required problem fields")
		return
	}

	problemID, ticketNumber, err := h.Service.CreateProblem(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "problem created successfully",
		"id":           problemID,
		"ticketNumber": ticketNumber,
	})
}

func (h *IspHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid problem id")
		return
	}

	var req ProblemReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required problem fields")
		return
	}

	if err := h.Service.UpdateProblem(r.Context(), problemID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "problem updated successfully"})
}

func (h *IspHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid problem id")
		return
	}

	if err := h.Service.DeleteProblem(r.Context(), problemID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "problem deleted successfully"})
}

func (h *IspHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.Service.GetProblems(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch problems")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": problems})
}
