package users

import (
	"sync"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
)

var _ UserRepo = (*InMemoryRepo)(nil)

var errUserNotFound = apperrors.New(apperrors.ErrNotFound, "user not found")

// InMemoryRepo keys users by username.
type InMemoryRepo struct {
	mu     sync.RWMutex
	users  map[string]User
	lastID int64
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		users: make(map[string]User),
	}
}

// Upsert stores user, assigning the next free id when user.ID is zero.
func (r *InMemoryRepo) Upsert(user *User) error {
	if user.Username == "" {
		return apperrors.New(apperrors.ErrValidation, "username is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		r.lastID++
		user.ID = r.lastID
	} else if user.ID > r.lastID {
		r.lastID = user.ID
	}
	r.users[user.Username] = *user
	return nil
}

func (r *InMemoryRepo) GetByUsername(username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, errUserNotFound
	}
	return &u, nil
}
