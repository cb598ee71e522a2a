package httpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"nextgen-api/internal/application/port/input"
	"nextgen-api/internal/application/port/output"
	"nextgen-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var defaultModels = []string{"03-mini-openai", "gpt-4", "llama-3"}

type handlers struct {
	processor input.TaskProcessor
	validate  *validator.Validate
	logger    output.LoggerPort
	models    []string
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("NextGen API is live!")
	writeJSON(w, http.StatusOK, map[string]any{"message": "NextGen API is live!"})
}

func (h *handlers) capabilities(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Fetching capabilities")
	writeJSON(w, http.StatusOK, map[string]any{"models": h.models})
}

func (h *handlers) heartbeat(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Heartbeat check")
	writeJSON(w, http.StatusOK, map[string]any{"info": "heartbeat OK", "role": "backend"})
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req entity.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondFault(w, entity.NewInvalidPayloadFault("invalid JSON body: "+err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondFault(w, entity.NewInvalidPayloadFault("validation failed: "+err.Error()))
		return
	}

	h.logger.Info("Received task", "task_name", req.TaskName)

	// Client disconnects do not cancel in-flight work; the only deadline sits
	// at the provider-call boundary.
	result, err := h.processor.Process(context.Background(), req)
	if err != nil {
		h.respondFault(w, entity.WrapFault(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) respondFault(w http.ResponseWriter, fault *entity.Fault) {
	h.logger.Error("Request failed", "kind", string(fault.Kind), "status", fault.Status, "detail", fault.Detail)
	writeJSON(w, fault.Status, map[string]any{"detail": fault.Detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"detail": "Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
