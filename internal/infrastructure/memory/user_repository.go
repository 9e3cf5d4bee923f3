package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; ok {
		return fmt.Errorf("insert user: %w", domain.ErrDuplicate)
	}
	if r.usernameTaken(user.Username, user.ID) {
		return fmt.Errorf("insert user: %w", domain.ErrDuplicate)
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := copyUser(&u)
	return &out, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			out := copyUser(&u)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("update user: %w", domain.ErrNotFound)
	}
	if r.usernameTaken(user.Username, user.ID) {
		return fmt.Errorf("update user: %w", domain.ErrDuplicate)
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

// List ordena como la consulta SQL: is_active, is_superuser, is_staff desc; username asc.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := copyUser(&u)
		list = append(list, &c)
	}
	r.s.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if a.IsSuperuser != b.IsSuperuser {
			return a.IsSuperuser
		}
		if a.IsStaff != b.IsStaff {
			return a.IsStaff
		}
		return a.Username < b.Username
	})
	return list, nil
}

func (r *UserRepo) usernameTaken(username, selfID string) bool {
	for id, u := range r.s.users {
		if id != selfID && u.Username == username {
			return true
		}
	}
	return false
}

func copyUser(u *entity.User) entity.User {
	c := *u
	if u.Age != nil {
		age := *u.Age
		c.Age = &age
	}
	return c
}
