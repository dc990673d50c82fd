package contact

import (
	domain "contacts-api/internal/domain/contact"
)

func fromDBModel(model *Contact) *domain.Contact {
	complement := ""
	if model.Complement != nil {
		complement = *model.Complement
	}

	var c = &domain.Contact{
		ID:        domain.ID(model.ID),
		AccountID: model.AccountID,

		Name:  model.Name,
		CPF:   model.CPF,
		Phone: model.Phone,

		CEP:          model.CEP,
		Street:       model.Street,
		Number:       model.Number,
		Complement:   complement,
		Neighborhood: model.Neighborhood,
		City:         model.City,
		State:        model.State,

		Latitude:  model.Latitude,
		Longitude: model.Longitude,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return c
}

func fromDBModels(models Contacts) domain.Contacts {
	cs := make(domain.Contacts, len(models))
	for idx, c := range models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
