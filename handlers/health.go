package handlers

import (
	"net/http"

	"github.com/flightdesk/codec"
)

// Status describes the running service.
type Status struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Aviation string `json:"aviation"`
	// LLM is the provider circuit state: closed, half-open or open.
	LLM string `json:"llm,omitempty"`
}

// HandleHealth serves GET /health. uptime and llmState are called on every
// request; a nil llmState leaves the llm field out.
func HandleHealth(uptime func() string, demoMode bool, llmState func() string) http.HandlerFunc {
	aviation := "live"
	if demoMode {
		aviation = "demo"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status := Status{
			Status:   "ok",
			Uptime:   uptime(),
			Aviation: aviation,
		}
		if llmState != nil {
			status.LLM = llmState()
		}
		codec.WriteJSON(w, http.StatusOK, status)
	}
}
