package auth

import (
	"contacts-api/internal/domain/account"
)

type (
	Account struct {
		UUID  string `json:"uuid"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginResponse struct {
		AccessToken string  `json:"access_token"`
		TokenType   string  `json:"token_type"`
		Account     Account `json:"account"`
	}
)

func ToResponseAccount(aDomain account.Account) Account {
	return Account{
		UUID:  aDomain.UUID.String(),
		Name:  aDomain.Name,
		Email: aDomain.Email,
	}
}
