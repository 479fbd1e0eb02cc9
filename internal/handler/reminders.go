package handler

import (
	"log/slog"
	"net/http"

	"jobtrack/internal/domain/models"
	"jobtrack/internal/domain/services"
	"jobtrack/internal/httputil"
)

// ReminderHandler handles reminder HTTP requests
type ReminderHandler struct {
	reminderService services.ReminderService
	logger          *slog.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService services.ReminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// ListReminders returns all reminders
// GET /api/reminders
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	remindersList, err := h.reminderService.ListReminders(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, remindersList)
}

// CreateReminder validates and appends a reminder
// POST /api/reminders
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReminderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reminder, err := h.reminderService.CreateReminder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, reminder)
}

// DeleteReminder removes one reminder; deleting a missing id succeeds
// DELETE /api/reminders/{id}
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reminderService.DeleteReminder(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
