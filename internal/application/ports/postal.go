package ports

import (
	"context"

	"contacts-api/internal/infrastructure/viacep"
)

type PostalLookup interface {
	LookupCEP(ctx context.Context, cep string) (*viacep.Address, error)
	SearchAddresses(ctx context.Context, uf, city, street string) []viacep.Address
}
