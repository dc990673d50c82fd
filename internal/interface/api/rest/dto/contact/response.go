package contact

import (
	"time"
)

type (
	Contact struct {
		ID    uint64 `json:"id"`
		Name  string `json:"name"`
		CPF   string `json:"cpf"`
		Phone string `json:"phone"`

		CEP          string `json:"cep"`
		Street       string `json:"street"`
		Number       string `json:"number"`
		Complement   string `json:"complement,omitempty"`
		Neighborhood string `json:"neighborhood"`
		City         string `json:"city"`
		State        string `json:"state"`

		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Contacts []Contact

	ResponsePage struct {
		Data          Contacts `json:"data"`
		Page          int      `json:"page"`
		Size          int      `json:"size"`
		TotalElements uint64   `json:"total_elements"`
		TotalPages    int      `json:"total_pages"`
	}
)
