package contact

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"contacts-api/internal/domain/contact"
)

// ToDomainContact normalizes free-text fields to NFC so that composed and
// decomposed forms of accented names compare (and search) identically.
func ToDomainContact(req Request) contact.Contact {
	return contact.Contact{
		Name:  norm.NFC.String(strings.TrimSpace(req.Name)),
		CPF:   strings.TrimSpace(req.CPF),
		Phone: strings.TrimSpace(req.Phone),

		CEP:          strings.TrimSpace(req.CEP),
		Street:       norm.NFC.String(strings.TrimSpace(req.Street)),
		Number:       strings.TrimSpace(req.Number),
		Complement:   norm.NFC.String(strings.TrimSpace(req.Complement)),
		Neighborhood: norm.NFC.String(strings.TrimSpace(req.Neighborhood)),
		City:         norm.NFC.String(strings.TrimSpace(req.City)),
		State:        strings.ToUpper(strings.TrimSpace(req.State)),

		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}

func ToResponseContact(cDomain contact.Contact) Contact {
	var c = Contact{
		ID:    uint64(cDomain.ID),
		Name:  cDomain.Name,
		CPF:   cDomain.CPF,
		Phone: cDomain.Phone,

		CEP:          cDomain.CEP,
		Street:       cDomain.Street,
		Number:       cDomain.Number,
		Complement:   cDomain.Complement,
		Neighborhood: cDomain.Neighborhood,
		City:         cDomain.City,
		State:        cDomain.State,

		Latitude:  cDomain.Latitude,
		Longitude: cDomain.Longitude,

		CreatedAt: cDomain.CreatedAt,
		UpdatedAt: cDomain.UpdatedAt,
	}

	return c
}

func ToResponseContacts(csDomain contact.Contacts) Contacts {
	cs := make(Contacts, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseContact(*c)
	}

	return cs
}

func ToResponsePage(page *contact.Page) ResponsePage {
	return ResponsePage{
		Data:          ToResponseContacts(page.Items),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
