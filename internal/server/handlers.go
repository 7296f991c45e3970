package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xtrillion/minerva-site/apimodels"
)

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	var req apimodels.DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	resp := s.engine.Respond(r.Context(), req.Query)
	resp.SessionID = s.sessions.record(req.SessionID, req.Query, resp)

	writeJSON(w, resp)
}

// handleDemoLast lets the page restore the previous answer after a reload.
func (s *Server) handleDemoLast(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("sessionId")
	if id == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	_, resp, ok := s.sessions.last(id)
	if !ok {
		http.Error(w, "no response for session", http.StatusNotFound)
		return
	}

	writeJSON(w, resp)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Name == "" || req.Email == "" || req.Message == "" {
		http.Error(w, "name, email and message are required", http.StatusBadRequest)
		return
	}

	// No delivery backend; the dialog just acknowledges.
	slog.Info("contact form submitted", "name", req.Name, "email", req.Email)
	writeJSON(w, apimodels.ContactResponse{Status: "received"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
