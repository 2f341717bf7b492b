package employeeservice

import (
	"net/http"
	"strconv"

	"inventaris/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type EmployeeHandler struct {
	Service EmployeeService
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required employee fields")
		return
	}

	employeeID, err := h.Service.CreateEmployee(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"message": "employee created successfully", "id": employeeID})
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid employee id")
		return
	}

	var req EmployeeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "missing required employee fields")
		return
	}

	if err := h.Service.UpdateEmployee(r.Context(), employeeID, req); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "employee updated successfully"})
}

func (h *EmployeeHandler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid employee id")
		return
	}

	if err := h.Service.DeactivateEmployee(r.Context(), employeeID); err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "employee deactivated successfully"})
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid employee id")
		return
	}

	employee, err := h.Service.GetEmployeeByID(r.Context(), employeeID)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]interface{}{"data": employee})
}

func (h *EmployeeHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageAndSize(r)
	filter := EmployeeFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	list, err := h.Service.GetEmployees(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch employees")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(list)
}

func (h *EmployeeHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "email and password are required")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		utils.RespondError(w, utils.StatusForError(err), err, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(res)
}
