package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/dmatos/portfolio-backend/errs"
)

// Responder is the single place errors become HTTP responses. Every error
// goes out as {"message": ...} with a "stack" field added outside
// production.
type Responder struct {
	logger     zerolog.Logger
	production bool
}

func NewResponder(logger zerolog.Logger, production bool) Responder {
	return Responder{logger: logger, production: production}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

type errorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
		if apiErr.Cause != nil {
			r.logger.Error().Err(apiErr.Cause).Msg(apiErr.Error())
		}
	} else {
		r.logger.Error().Err(err).Msg("unexpected error")
	}

	body := errorBody{Message: message}
	if !r.production {
		body.Stack = string(debug.Stack())
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		r.logger.Error().Err(encodeErr).Msg("error writing error response")
	}
}

// wrapDatabaseError wraps a store failure with context information.
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
