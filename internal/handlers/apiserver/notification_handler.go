package apiserver

import (
	"net/http"
	"strconv"

	"social-go/internal/middleware"
	"social-go/internal/services"

	"github.com/gorilla/mux"
)

// NotificationHandler bundles the notification HTTP handlers. Notifications
// are written by the Kafka activity consumer; this surface only reads them.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler instance.
func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotificationsHandler returns the authenticated user's notifications,
// newest first. The optional "limit" query parameter caps the result.
func (h *NotificationHandler) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	notifications, err := h.notificationService.ListNotifications(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err, "failed to list notifications")
		return
	}
	writeJSONResponse(w, http.StatusOK, notifications)
}

// MarkNotificationReadHandler marks one of the authenticated user's
// notifications as read. Another user's notification reads as not found.
func (h *NotificationHandler) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	notificationID, err := strconv.ParseUint(vars["notificationID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid notification ID", http.StatusBadRequest)
		return
	}

	if err := h.notificationService.MarkNotificationRead(r.Context(), userID, uint(notificationID)); err != nil {
		writeServiceError(w, err, "failed to mark notification read")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "notification read"})
}
