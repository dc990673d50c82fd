package contact

import (
	"time"
)

type (
	Contact struct {
		ID        uint64
		AccountID uint64

		Name  string
		CPF   string
		Phone string

		CEP          string
		Street       string
		Number       string
		Complement   *string
		Neighborhood string
		City         string
		State        string

		Latitude  float64
		Longitude float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
