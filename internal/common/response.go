package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pronet/internal/apperror"
)

// Every endpoint answers with the same envelope: a success flag plus either
// the payload fields or a human-readable message.

// WriteJSON sends data as JSON with the given status code. data is expected
// to already carry a "success" field.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// WriteMessage sends a failure envelope with the given message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// WriteError maps a service error to an HTTP status and failure envelope.
// Unknown errors become a generic 500; internal detail is logged here and
// never reaches the caller.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrValidation),
		errors.Is(err, apperror.ErrWeakPassword),
		errors.Is(err, apperror.ErrDuplicateEmail),
		errors.Is(err, apperror.ErrDuplicateUsername),
		errors.Is(err, apperror.ErrEmptyPost),
		errors.Is(err, apperror.ErrInvalidMediaType),
		errors.Is(err, apperror.ErrMediaTooLarge):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, apperror.ErrTokenExpired),
		errors.Is(err, apperror.ErrTokenInvalid):
		status = http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		WriteMessage(w, status, appErr.Message)
		return
	}

	log.Printf("internal error: %v", err)
	WriteMessage(w, http.StatusInternalServerError, "internal server error")
}
