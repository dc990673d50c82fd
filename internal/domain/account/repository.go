package account

import (
	"context"
)

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*Account, error)
	FetchByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req Account) (*Account, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	Delete(ctx context.Context, id ID) error
}
