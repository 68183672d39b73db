package main

import (
	"encoding/json"
	"net/http"
	"schedify/pkg/log"
	"schedify/pkg/mail"
	"schedify/pkg/models"
)

// sendRequest is the send-now payload. The recipient may arrive as
// either "email" or "to"; "email" wins when both are present.
type sendRequest struct {
	To           string `json:"to"`
	Email        string `json:"email"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	ScheduleTime string `json:"scheduleTime"`
	ReminderDate string `json:"reminderDate"`
	ReminderTime string `json:"reminderTime"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
}

func (r *sendRequest) recipient() string {
	if r.Email != "" {
		return r.Email
	}
	return r.To
}

func (s *server) sendHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Logger()

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Use POST method", http.StatusMethodNotAllowed)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}

	if req.recipient() == "" || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "Missing required fields",
			"required": []string{"email or to", "title"},
		})
		return
	}

	schedule := &models.Schedule{
		Title:        req.Title,
		Date:         req.Date,
		ScheduleTime: req.ScheduleTime,
		ReminderDate: req.ReminderDate,
		ReminderTime: req.ReminderTime,
		Category:     req.Category,
		Priority:     req.Priority,
	}

	if err := s.sender.Send(mail.ManualMessage(req.recipient(), schedule)); err != nil {
		logger.Errorf(nil, "manual send failed, %s", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Logger().Errorf(nil, "error writing response, %s", err)
	}
}
