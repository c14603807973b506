package state

import (
	"context"

	"github.com/Qathar8/ums-portal/internal/domain/notification"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// MarkNotificationRead marca a notificação indicada como lida. Marcar uma
// notificação inexistente não é um erro. Notificações não geram entradas no
// log de atividades.
func (c *Container) MarkNotificationRead(ctx context.Context, notificationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	oldNotifications := c.notifications

	next := make([]notification.Notification, len(c.notifications))
	changed := false
	for i := range c.notifications {
		next[i] = c.notifications[i]
		if next[i].ID == notificationID && !next[i].IsRead {
			next[i].IsRead = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	c.notifications = next

	if err := c.persistLocked(ctx, storage.KeyNotifications); err != nil {
		c.notifications = oldNotifications
		return err
	}
	return nil
}

// MarkAllNotificationsRead marca todas as notificações como lidas
func (c *Container) MarkAllNotificationsRead(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	oldNotifications := c.notifications

	next := make([]notification.Notification, len(c.notifications))
	changed := false
	for i := range c.notifications {
		next[i] = c.notifications[i]
		if !next[i].IsRead {
			next[i].IsRead = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	c.notifications = next

	if err := c.persistLocked(ctx, storage.KeyNotifications); err != nil {
		c.notifications = oldNotifications
		return err
	}
	return nil
}
