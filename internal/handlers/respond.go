package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"

	"github.com/go-playground/validator/v10"
)

const StatusClientClosedRequest = 499

const maxBodySize = 1 << 20

var validate = validator.New()

func RespondJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to responde user", sl.Err(err))
	}
}

// DecodeBody reads a JSON body into dst and validates it.
func DecodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}

	return validate.Struct(dst)
}

// WriteServiceError maps service errors onto HTTP status codes.
func WriteServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, serviceerrors.ErrContextCanceled):
		log.Warn("Context canceled", sl.Err(err))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	case errors.Is(err, serviceerrors.ErrDeadlineExceeded):
		log.Warn("Deadline exceeded", sl.Err(err))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	case errors.Is(err, serviceerrors.ErrNotFound):
		log.Warn("Not found", sl.Err(err))
		http.NotFound(w, r)
	case errors.Is(err, serviceerrors.ErrInvalidArgument):
		log.Warn("Invalid argument", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error(msg, sl.Err(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
