package memory

import (
	"context"
	"fmt"

	user "github.com/dwikikusuma/shopfront/internal/user/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

type Users struct {
	s *Store
}

func (r *Users) Create(ctx context.Context, u user.User) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	u.Email = user.NormalizeEmail(u.Email)
	if u.ID == "" {
		u.ID = r.s.newID()
	}
	u.CreatedAt = r.s.now().UTC()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.userByEmail[u.Email]; ok {
		return user.User{}, fmt.Errorf("user %s: %w", u.Email, apperr.ErrConflict)
	}
	r.s.users[u.ID] = u
	r.s.userByEmail[u.Email] = u.ID
	return u, nil
}

func (r *Users) Get(ctx context.Context, id string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, apperr.NotFound("user", id)
	}
	return u, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	email = user.NormalizeEmail(email)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.userByEmail[email]
	if !ok {
		return user.User{}, apperr.NotFound("user", email)
	}
	return r.s.users[id], nil
}
