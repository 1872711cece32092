package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/nexus-blend/showcase-api/internal/auth/domain"
	"github.com/nexus-blend/showcase-api/internal/storage/memory"
)

// UserRepository keeps admin accounts in memory, unique by username.
type UserRepository struct {
	mu    sync.Mutex // serialises the username uniqueness check with insert
	table *memory.Table[domain.User]
}

func NewUserRepository(opts ...memory.Option) *UserRepository {
	return &UserRepository{
		table: memory.NewTable(memory.NewestFirst(func(u domain.User) time.Time { return u.CreatedAt }), opts...),
	}
}

// Create stores a user with an already hashed password.
func (r *UserRepository) Create(username, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.GetByUsername(username); err == nil {
		return nil, fmt.Errorf("create user %q: %w", username, domain.ErrUsernameTaken)
	}

	u := r.table.Insert(func(id string, at time.Time) domain.User {
		return domain.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: at}
	})
	return &u, nil
}

func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	u, ok := r.table.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	u, ok := r.table.Find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) Count() int {
	return r.table.Count()
}
