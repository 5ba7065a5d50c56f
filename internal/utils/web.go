package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/logger"
)

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteError maps err to its status code and emits a structured JSON message.
// Anything without an explicit status is a 500 with a safe generic message;
// internal details are logged, never returned.
func WriteError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		msg = "Internal server error"
	}
	WriteJSON(w, status, map[string]string{"message": msg})
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return apperr.BadRequest("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return apperr.BadRequest("Required fields missing")
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return apperr.BadRequest("Body is invalid json")
	}
	return nil
}
