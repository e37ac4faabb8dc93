package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jetsetgo/internal/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service outcomes onto response codes. Store errors are
// logged and reported generically so internals never reach the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUserExists):
		writeJSON(w, http.StatusConflict, map[string]string{"message": "User already exists with this email."})
	case errors.Is(err, apperrors.ErrEmailNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Email does not exist. Please sign up."})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Incorrect password. Please try again."})
	case errors.Is(err, apperrors.ErrSlotTaken):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Slot already reserved for that date."})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "An unexpected error occurred"})
	}
}
