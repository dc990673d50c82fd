package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/domain/account"
	"contacts-api/internal/domain/contact"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidPassword        = errors.New("invalid password")
)

type AccountService struct {
	accountRepository account.Repository
	contactRepository contact.Repository
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository account.Repository,
	contactRepository contact.Repository,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		contactRepository: contactRepository,
		mCounter:          mCounter,
	}
}

func (as *AccountService) Register(ctx context.Context, name, email, password string) (*account.Account, error) {
	exists, err := as.accountRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a, err := as.accountRepository.Create(ctx, account.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("account_created_total").Inc()

	return a, nil
}

func (as *AccountService) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return as.accountRepository.FetchByEmail(ctx, email)
}

func (as *AccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	return as.accountRepository.ExistsByEmail(ctx, email)
}

// DeleteAccount removes the account and everything it owns. The password is
// re-checked so a leaked token alone cannot destroy the account.
func (as *AccountService) DeleteAccount(ctx context.Context, owner account.UUID, password string) error {
	a, err := as.accountRepository.FetchByUUID(ctx, owner)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAccountNotFound
	}

	if err = bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}

	id, err := as.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return err
	}

	// todo: should be run in transaction
	if err = as.contactRepository.DeleteByOwner(ctx, uint64(id)); err != nil {
		return err
	}
	if err = as.accountRepository.Delete(ctx, id); err != nil {
		return err
	}

	as.mCounter.WithLabelValues("account_deleted_total").Inc()

	return nil
}
