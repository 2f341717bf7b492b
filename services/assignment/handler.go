package assignmentservice

import (
	"net/http"
	"strconv"

	"inventaris/providers"
	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type AssignmentHandler struct {
	Service        AssignmentService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAssignmentHandler(service AssignmentService, auth providers.AuthMiddlewareService) *AssignmentHandler {
	return &AssignmentHandler{Service: service, AuthMiddleware: auth}
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req AssignmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required assignment fields")
		return
	}

	assignmentID, err := h.Service.CreateAssignment(r.Context(), req, adminID)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "asset assigned successfully", "id": assignmentID})
}

func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid assignment id")
		return
	}

	var req AssignmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required assignment fields")
		return
	}

	if err := h.Service.UpdateAssignment(r.Context(), assignmentID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "assignment updated successfully"})
}

func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid assignment id")
		return
	}

	if err := h.Service.DeleteAssignment(r.Context(), assignmentID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "assignment deleted successfully"})
}

func (h *AssignmentHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageAndSize(r)
	filter := AssignmentFilter{
		Group:  r.URL.Query().Get("group"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	list, err := h.Service.GetAssignments(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(list)
}
