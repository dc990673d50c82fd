package account

import (
	domain "contacts-api/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	var a = &domain.Account{
		UUID:         model.UUID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return a
}
