package repo

import (
	"context"

	"github.com/pocketmint/auth-service/internal/domain/auth/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// TokenRepo holds the set of refresh tokens currently valid for exchange,
// keyed by the encoded token string itself.
type TokenRepo interface {
	Store(ctx context.Context, token string) error
	// Delete is idempotent: removing an absent token is not an error.
	Delete(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}
