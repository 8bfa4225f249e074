package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/flightdesk/codec"
	"github.com/flightdesk/logger"
	"github.com/flightdesk/types"
)

// Responder turns a user message into the final reply text.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// HandleChat serves POST /chat. A missing or malformed body is rejected
// before the responder is called; responder failures are reported whole,
// never as a partial reply.
func HandleChat(responder Responder, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLog := log.With("request_id", middleware.GetReqID(r.Context()))

		var req types.ChatRequest
		if err := codec.DecodeJSON(r, &req); err != nil {
			reqLog.Info("rejected chat request", "error", err)
			codec.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			reqLog.Info("rejected chat request", "error", err)
			codec.WriteError(w, err)
			return
		}

		start := time.Now()
		response, err := responder.Respond(r.Context(), req.Message)
		if err != nil {
			reqLog.Error("chat failed", "error", err, "duration", time.Since(start))
			codec.WriteError(w, err)
			return
		}

		reqLog.Info("chat answered", "duration", time.Since(start))
		codec.WriteJSON(w, http.StatusOK, types.ChatResponse{Response: response})
	}
}
