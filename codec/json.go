package codec

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/flightdesk/types"
)

// MaxBodyBytes bounds request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Any failure, an empty body
// included, wraps types.ErrBadRequest.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return types.BadRequest("request body is empty")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return types.BadRequest("request body is empty")
		}
		return types.BadRequest("invalid JSON body: " + err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return types.BadRequest("request body must hold a single JSON value")
	}
	return nil
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes err as {"error": "..."} with the status StatusCode picks.
func WriteError(w http.ResponseWriter, err error) error {
	return WriteJSON(w, StatusCode(err), types.Error{Error: err.Error()})
}

// StatusCode maps an error to the HTTP status reported to the caller.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnknownTool),
		errors.Is(err, types.ErrInvalidToolArguments),
		errors.Is(err, types.ErrUpstreamProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
