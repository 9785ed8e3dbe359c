package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
// It backs tests and single-node development; every mutation happens under
// the write lock so readers observe either the pre- or post-update state.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User // keyed by id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrNotFound
	}
	return r.find(func(u *entity.User) bool { return u.ResetToken == token })
}

// find returns a copy of the first user matching the predicate.
func (r *UserRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) UpdateCredentials(ctx context.Context, id string, upd repository.CredentialUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.HashedPassword != nil {
		u.HashedPassword = *upd.HashedPassword
	}
	if upd.ResetToken != nil {
		u.ResetToken = *upd.ResetToken
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, hashedPassword string) error {
	if token == "" {
		return repository.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ResetToken == token {
			u.HashedPassword = hashedPassword
			u.ResetToken = ""
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
