package state

import (
	"context"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// Authenticate valida as credenciais e registra a entrada do usuário.
// Usuário desconhecido, inativo ou senha incorreta produzem o mesmo erro,
// sem distinção observável e sem nenhuma mutação de estado.
func (c *Container) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var target *user.User
	for i := range c.users {
		if c.users[i].Username == username {
			target = &c.users[i]
			break
		}
	}
	if target == nil || !target.IsActive || !target.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	oldUsers := c.users
	oldActivities := c.activities

	now := time.Now()
	updated := make([]user.User, len(c.users))
	for i := range c.users {
		updated[i] = *c.users[i].Clone()
		if updated[i].ID == target.ID {
			updated[i].LastLogin = &now
		}
	}
	c.users = updated

	actor := c.findUserLocked(target.ID)
	c.appendActivityLocked(ctx, actor, activity.ActionLogin, activity.Details{}, "")

	if err := c.persistLocked(ctx, storage.KeyUsers, storage.KeyActivityLogs); err != nil {
		c.users = oldUsers
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Usuário autenticado", "username", username)
	return actor.Clone(), nil
}

// RecordLogout registra a saída do usuário no log de atividades
func (c *Container) RecordLogout(ctx context.Context, actorID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}

	oldActivities := c.activities
	c.appendActivityLocked(ctx, actor, activity.ActionLogout, activity.Details{}, "")

	if err := c.persistLocked(ctx, storage.KeyActivityLogs); err != nil {
		c.activities = oldActivities
		return err
	}
	return nil
}

// ChangePassword troca a senha do ator após validar a senha atual
func (c *Container) ChangePassword(ctx context.Context, actorID, currentPassword, newPassword string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}
	if !actor.CheckPassword(currentPassword) {
		return ErrInvalidCredentials
	}

	oldUsers := c.users
	oldActivities := c.activities

	updated := make([]user.User, len(c.users))
	for i := range c.users {
		updated[i] = *c.users[i].Clone()
		if updated[i].ID == actorID {
			if err := updated[i].SetPassword(newPassword); err != nil {
				return err
			}
		}
	}
	c.users = updated

	c.appendActivityLocked(ctx, c.findUserLocked(actorID), activity.ActionPasswordChange, activity.Details{}, "")

	if err := c.persistLocked(ctx, storage.KeyUsers, storage.KeyActivityLogs); err != nil {
		c.users = oldUsers
		c.activities = oldActivities
		return err
	}

	c.log.Info("Senha alterada", "user_id", actorID)
	return nil
}
