package state

import (
	"context"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// UserPatch descreve uma atualização parcial de usuário: apenas os campos
// não nulos são aplicados. Uma lista de permissões não nula substitui a
// lista inteira; uma senha não nula é re-hasheada.
type UserPatch struct {
	Name        *string
	Email       *string
	Role        *user.Role
	IsActive    *bool
	ShopID      *string
	Permissions []user.Permission
	Password    *string
}

// AddUser cria um usuário em nome do ator. Nomes de usuário são únicos no
// sistema; a loja vinculada, quando informada, precisa existir.
func (c *Container) AddUser(ctx context.Context, actorID string, u *user.User, password string) (*user.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}
	for i := range c.users {
		if c.users[i].Username == u.Username {
			return nil, ErrUsernameTaken
		}
	}
	if u.ShopID != "" && c.findShopLocked(u.ShopID) == nil {
		return nil, ErrShopNotFound
	}

	created := u.Clone()
	if err := created.SetPassword(password); err != nil {
		return nil, err
	}
	created.ID = c.nextIDLocked()

	oldUsers := c.users
	oldActivities := c.activities

	next := make([]user.User, 0, len(c.users)+1)
	next = append(next, c.users...)
	c.users = append(next, *created)

	c.appendActivityLocked(ctx, actor, activity.ActionUserCreate, activity.Details{
		EntityID:   created.ID,
		EntityName: created.Name,
		Role:       string(created.Role),
	}, "")

	if err := c.persistLocked(ctx, storage.KeyUsers, storage.KeyActivityLogs); err != nil {
		c.users = oldUsers
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Usuário criado", "id", created.ID, "username", created.Username, "role", created.Role)
	return created.Clone(), nil
}

// UpdateUser aplica uma atualização parcial ao usuário indicado. A tentativa
// é registrada no log de atividades mesmo quando o usuário não existe; nesse
// caso a entrada usa o ID como rótulo e o erro é retornado.
func (c *Container) UpdateUser(ctx context.Context, actorID, userID string, patch UserPatch) (*user.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}
	if patch.ShopID != nil && *patch.ShopID != "" && c.findShopLocked(*patch.ShopID) == nil {
		return nil, ErrShopNotFound
	}

	oldUsers := c.users
	oldActivities := c.activities

	var updated *user.User
	next := make([]user.User, len(c.users))
	for i := range c.users {
		next[i] = *c.users[i].Clone()
		if next[i].ID != userID {
			continue
		}
		if err := applyUserPatch(&next[i], patch); err != nil {
			return nil, err
		}
		updated = &next[i]
	}

	details := activity.Details{EntityID: userID}
	if updated != nil {
		c.users = next
		details.EntityName = updated.Name
	}
	c.appendActivityLocked(ctx, actor, activity.ActionUserUpdate, details, "")

	keys := []string{storage.KeyActivityLogs}
	if updated != nil {
		keys = append(keys, storage.KeyUsers)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.users = oldUsers
		c.activities = oldActivities
		return nil, err
	}

	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated.Clone(), nil
}

// DeleteUser remove o usuário indicado. A remoção de um usuário inexistente
// não é um erro: a tentativa é registrada com o ID como rótulo e a operação
// conclui sem efeito.
func (c *Container) DeleteUser(ctx context.Context, actorID, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}

	oldUsers := c.users
	oldActivities := c.activities

	details := activity.Details{EntityID: userID}
	next := make([]user.User, 0, len(c.users))
	removed := false
	for i := range c.users {
		if c.users[i].ID == userID {
			details.EntityName = c.users[i].Name
			removed = true
			continue
		}
		next = append(next, c.users[i])
	}
	if removed {
		c.users = next
	}

	c.appendActivityLocked(ctx, actor, activity.ActionUserDelete, details, "")

	keys := []string{storage.KeyActivityLogs}
	if removed {
		keys = append(keys, storage.KeyUsers)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.users = oldUsers
		c.activities = oldActivities
		return err
	}
	return nil
}

// applyUserPatch aplica os campos presentes do patch ao usuário
func applyUserPatch(u *user.User, patch UserPatch) error {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return user.ErrInvalidRole
		}
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	if patch.ShopID != nil {
		u.ShopID = *patch.ShopID
	}
	if patch.Permissions != nil {
		u.Permissions = append([]user.Permission(nil), patch.Permissions...)
	}
	if patch.Password != nil {
		if err := u.SetPassword(*patch.Password); err != nil {
			return err
		}
	}
	return nil
}
