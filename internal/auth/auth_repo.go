package auth

import (
	"context"
	"strings"

	autherrors "go-leave/internal/auth/errors"

	"golang.org/x/crypto/bcrypt"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Exists(ctx context.Context, email string) bool
}

// staticRepository holds the fixed demo accounts. Registration never adds to it.
type staticRepository struct {
	users map[string]User
}

// NewStaticRepository hashes the demo passwords once at startup so login
// compares bcrypt hashes rather than plain text.
func NewStaticRepository() (Repository, error) {
	users := make(map[string]User, len(seedAccounts))
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users[strings.ToLower(acc.Email)] = User{
			ID:           acc.ID,
			Name:         acc.Name,
			Email:        acc.Email,
			Role:         acc.Role,
			PasswordHash: string(hash),
		}
	}
	return &staticRepository{users: users}, nil
}

func (r *staticRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, autherrors.ErrInvalidCredentials
	}
	return &u, nil
}

func (r *staticRepository) Exists(_ context.Context, email string) bool {
	_, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
