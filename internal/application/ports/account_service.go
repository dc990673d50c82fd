package ports

import (
	"context"

	"contacts-api/internal/domain/account"
)

type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteAccount(ctx context.Context, owner account.UUID, password string) error
}
