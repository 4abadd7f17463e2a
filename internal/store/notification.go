package store

import (
	"context"
	"sync"

	"pgnest/pkg/types"
)

type NotificationRepository struct {
	mu       sync.Mutex
	items    []types.Notification
	settings []types.NotificationSetting
}

func NewNotificationRepository(items []types.Notification, settings []types.NotificationSetting) *NotificationRepository {
	return &NotificationRepository{
		items:    items,
		settings: settings,
	}
}

// Notifications returns the feed narrowed to a tab.
func (r *NotificationRepository) Notifications(ctx context.Context, tab types.NotificationTab) []types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Notification, 0, len(r.items))
	for _, n := range r.items {
		switch tab {
		case types.NotificationTabUnread:
			if n.Read {
				continue
			}
		case types.NotificationTabRead:
			if !n.Read {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func (r *NotificationRepository) UnreadCount(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, item := range r.items {
		if !item.Read {
			n++
		}
	}
	return n
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return nil
		}
	}
	return types.ErrNotificationMissing
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].Read = true
	}
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return types.ErrNotificationMissing
}

func (r *NotificationRepository) Settings(ctx context.Context) []types.NotificationSetting {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.NotificationSetting, len(r.settings))
	copy(out, r.settings)
	return out
}

// ToggleSetting flips a delivery toggle and returns its new state.
func (r *NotificationRepository) ToggleSetting(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.settings {
		if r.settings[i].ID == id {
			r.settings[i].Enabled = !r.settings[i].Enabled
			return r.settings[i].Enabled, nil
		}
	}
	return false, types.ErrNotificationMissing
}
