package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"contacts-api/internal/domain/contact"
	"contacts-api/internal/infrastructure/db/postgres"
)

// ErrCPFAlreadyExists surfaces the (account_id, cpf) unique index. The
// service checks uniqueness first for a clean message, but the index is the
// actual guarantee under concurrent creates.
var ErrCPFAlreadyExists = errors.New("cpf already registered for this account")

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) contact.Repository {
	return &Repository{db: db}
}

// sortColumns whitelists ORDER BY targets; anything else falls back to name.
var sortColumns = map[string]string{
	"name":       "name",
	"cpf":        "cpf",
	"city":       "city",
	"created_at": "created_at",
}

func orderClause(req contact.PageRequest) string {
	col, ok := sortColumns[req.SortBy]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if req.SortDesc {
		dir = "DESC"
	}
	return col + " " + dir
}

func (r *Repository) FetchByOwner(ctx context.Context, accountID uint64, req contact.PageRequest) (*contact.Page, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountContactsByOwner, accountID).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(SelectContactsByOwner, orderClause(req))
	rows, err := r.db.Query(ctx, q, accountID, req.Size, req.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cs, err := scanContacts(rows)
	if err != nil {
		return nil, err
	}

	return contact.NewPage(fromDBModels(cs), req, total), nil
}

func (r *Repository) SearchByOwner(ctx context.Context, accountID uint64, term string, req contact.PageRequest) (*contact.Page, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountSearchContactsByOwner, accountID, term).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(SearchContactsByOwner, orderClause(req))
	rows, err := r.db.Query(ctx, q, accountID, term, req.Size, req.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cs, err := scanContacts(rows)
	if err != nil {
		return nil, err
	}

	return contact.NewPage(fromDBModels(cs), req, total), nil
}

func (r *Repository) FetchByID(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	c := new(Contact)
	err := scanContact(r.db.QueryRow(ctx, SelectContactByID, uint64(id)), c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) ExistsByOwnerAndCPF(ctx context.Context, accountID uint64, cpf string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsContactByOwnerAndCPF, accountID, cpf).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repository) ExistsByOwnerAndCPFExcluding(ctx context.Context, accountID uint64, cpf string, id contact.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsContactByOwnerAndCPFExcluding, accountID, cpf, uint64(id)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, req contact.Contact) (*contact.Contact, error) {
	c := new(Contact)
	err := scanContact(r.db.QueryRow(
		ctx,
		InsertContact,
		req.AccountID, req.Name, req.CPF, req.Phone, req.CEP,
		req.Street, req.Number, toNullable(req.Complement), req.Neighborhood,
		req.City, req.State, req.Latitude, req.Longitude,
	), c)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCPFAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) Update(ctx context.Context, req contact.Contact) (*contact.Contact, error) {
	c := new(Contact)
	err := scanContact(r.db.QueryRow(
		ctx,
		UpdateContactByID,
		req.Name, req.CPF, req.Phone, req.CEP,
		req.Street, req.Number, toNullable(req.Complement), req.Neighborhood,
		req.City, req.State, req.Latitude, req.Longitude,
		uint64(req.ID),
	), c)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCPFAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) Delete(ctx context.Context, id contact.ID) error {
	_, err := r.db.Exec(ctx, DeleteContactByID, uint64(id))
	return err
}

func (r *Repository) DeleteByOwner(ctx context.Context, accountID uint64) error {
	_, err := r.db.Exec(ctx, DeleteContactsByOwner, accountID)
	return err
}

func scanContact(row pgx.Row, c *Contact) error {
	return row.Scan(
		&c.ID,
		&c.AccountID,
		&c.Name,
		&c.CPF,
		&c.Phone,

		&c.CEP,
		&c.Street,
		&c.Number,
		&c.Complement,
		&c.Neighborhood,
		&c.City,
		&c.State,

		&c.Latitude,
		&c.Longitude,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func scanContacts(rows pgx.Rows) (Contacts, error) {
	var cs Contacts
	for rows.Next() {
		c := new(Contact)
		if err := scanContact(rows, c); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cs, nil
}

func toNullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
