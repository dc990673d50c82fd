package contact

import (
	"context"
)

type Repository interface {
	FetchByOwner(ctx context.Context, accountID uint64, req PageRequest) (*Page, error)
	SearchByOwner(ctx context.Context, accountID uint64, term string, req PageRequest) (*Page, error)
	FetchByID(ctx context.Context, id ID) (*Contact, error)
	ExistsByOwnerAndCPF(ctx context.Context, accountID uint64, cpf string) (bool, error)
	ExistsByOwnerAndCPFExcluding(ctx context.Context, accountID uint64, cpf string, id ID) (bool, error)
	Create(ctx context.Context, req Contact) (*Contact, error)
	Update(ctx context.Context, req Contact) (*Contact, error)
	Delete(ctx context.Context, id ID) error
	DeleteByOwner(ctx context.Context, accountID uint64) error
}
