package ports

import (
	"context"

	"contacts-api/internal/domain/account"
	"contacts-api/internal/domain/contact"
)

// ContactService is the ownership-scoped contact lifecycle manager. Every
// call carries the owner identity explicitly; nothing is read from ambient
// state.
type ContactService interface {
	ListContacts(ctx context.Context, owner account.UUID, search string, req contact.PageRequest) (*contact.Page, error)
	GetContact(ctx context.Context, owner account.UUID, id contact.ID) (*contact.Contact, error)
	CreateContact(ctx context.Context, owner account.UUID, c contact.Contact) (*contact.Contact, error)
	UpdateContact(ctx context.Context, owner account.UUID, id contact.ID, c contact.Contact) (*contact.Contact, error)
	DeleteContact(ctx context.Context, owner account.UUID, id contact.ID) error
	CPFRegistered(ctx context.Context, owner account.UUID, cpf string) (bool, error)
}
