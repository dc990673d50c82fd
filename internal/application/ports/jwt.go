package ports

import (
	"contacts-api/internal/domain/account"
)

type Auth interface {
	GenerateToken(a *account.Account, requestPassword string) (string, error)
}
