// Package respond writes JSON responses of the HTTP API.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/client/remote"
	"github.com/aliskhannn/edutrack/internal/schema"
)

type resultResponse struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write response")
	}
}

// OK writes {"result": v} with 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, resultResponse{Result: v})
}

// Created writes {"result": v} with 201.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, resultResponse{Result: v})
}

// Fail writes {"error": err} with status.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, errorResponse{Error: err.Error()})
}

// Upstream writes a failure of an external provider as 502 and reports true.
// Any other error is left to the caller.
func Upstream(w http.ResponseWriter, err error) bool {
	if errors.Is(err, remote.ErrRemoteCallFailed) || errors.Is(err, schema.ErrSchemaMismatch) {
		Fail(w, http.StatusBadGateway, err)
		return true
	}

	return false
}
