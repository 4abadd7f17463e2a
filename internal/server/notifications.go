package server

import (
	"net/http"

	"pgnest/pkg/types"
)

func (s *Service) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tab := types.NotificationTab(r.URL.Query().Get("tab"))
	switch tab {
	case types.NotificationTabUnread, types.NotificationTabRead:
	default:
		tab = types.NotificationTabAll
	}

	s.respondJSON(w, http.StatusOK, types.NotificationsResponse{
		Notifications: s.notificationRepo.Notifications(ctx, tab),
		Settings:      s.notificationRepo.Settings(ctx),
		UnreadCount:   s.notificationRepo.UnreadCount(ctx),
		Tab:           tab,
	})
}

func (s *Service) handlePostNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.notificationRepo.MarkRead(r.Context(), id); err != nil {
		s.respondNotFound(w, "/api/notifications")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "marked as read"})
}

func (s *Service) handlePostNotificationsReadAll(w http.ResponseWriter, r *http.Request) {
	s.notificationRepo.MarkAllRead(r.Context())
	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "all notifications marked as read"})
}

func (s *Service) handlePostNotificationDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.notificationRepo.Delete(r.Context(), id); err != nil {
		s.respondNotFound(w, "/api/notifications")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "notification deleted"})
}

func (s *Service) handlePostNotificationSettingToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	enabled, err := s.notificationRepo.ToggleSetting(r.Context(), id)
	if err != nil {
		s.respondNotFound(w, "/api/notifications")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]bool{"enabled": enabled})
}
