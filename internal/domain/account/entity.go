package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID

	Account struct {
		UUID         UUID
		Name         string
		Email        string
		PasswordHash string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
