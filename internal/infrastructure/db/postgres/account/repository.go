package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contacts-api/internal/domain/account"
	"contacts-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) account.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid account.UUID) (*account.Account, error) {
	a := new(Account)
	err := scanAccount(r.db.QueryRow(ctx, SelectAccountByUUID, uuid.String()), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*account.Account, error) {
	a := new(Account)
	err := scanAccount(r.db.QueryRow(ctx, SelectAccountByEmail, email), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsAccountByEmail, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, req account.Account) (*account.Account, error) {
	a := new(Account)
	err := scanAccount(r.db.QueryRow(
		ctx,
		InsertAccount,
		req.Name, req.Email, req.PasswordHash,
	), a)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid account.UUID) (account.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("account not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return account.ID(id), nil
}

func (r *Repository) Delete(ctx context.Context, id account.ID) error {
	_, err := r.db.Exec(ctx, DeleteAccountByID, uint64(id))
	return err
}

func scanAccount(row pgx.Row, a *Account) error {
	return row.Scan(
		&a.ID,
		&a.UUID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
}
