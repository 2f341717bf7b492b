package utils

import (
	"errors"
	"net/http"
	"strconv"

	"inventaris/models"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := jsoniter.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Error(message, zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// StatusForError maps the structured error kinds onto HTTP statuses; anything
// unrecognized is a 500.
func StatusForError(err error) int {
	var ve *models.ValidationError
	var nf *models.NotFoundError
	var ce *models.ConflictError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// GetPageAndSize reads page/pageSize query params, 1-based page.
func GetPageAndSize(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// PageCount is ceil(total/pageSize) for the {data, pageCount} list envelope.
func PageCount(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	count := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		count++
	}
	return int(count)
}
