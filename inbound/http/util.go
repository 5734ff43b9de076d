package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"event-ticket/common/errs"
	"event-ticket/model"

	"github.com/go-playground/validator/v10"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var cause string
	var data any
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		if httpErr.Cause != nil {
			cause = httpErr.Cause.Error()
		}
		w.WriteHeader(httpErr.Code)
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusUnprocessableEntity)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			fieldName := fieldErr.Field()
			validationErrors[fieldName] = fieldErr.Tag()
		}

		data = validationErrors
	} else {
		message = "Internal Server Error"
		w.WriteHeader(500)
	}

	errorResponse := model.ErrorResponse{Message: message, Error: cause, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func parseIDPathValue(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil || id < 1 {
		return 0, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid id"}
	}
	return int32(id), nil
}

func parsePageQuery(r *http.Request) int32 {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32)
	if err != nil || page < 1 {
		return 1
	}
	return int32(page)
}

// parseDateTime accepts the two timestamp layouts clients send.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func generateApiKey() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
