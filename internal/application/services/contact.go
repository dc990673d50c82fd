package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/domain/account"
	domain "contacts-api/internal/domain/contact"
	contactDB "contacts-api/internal/infrastructure/db/postgres/contact"
	"contacts-api/internal/infrastructure/geocoding"
	"contacts-api/internal/infrastructure/mq"
	contactDTO "contacts-api/internal/interface/api/rest/dto/contact"
	"contacts-api/pkg/cpf"
)

var (
	ErrInvalidCPF            = errors.New("invalid cpf")
	ErrCPFAlreadyRegistered  = errors.New("cpf already registered for this account")
	ErrContactNotFound       = errors.New("contact not found")
	ErrContactAccessDenied   = errors.New("contact belongs to another account")
	ErrCoordinatesUnresolved = errors.New("could not resolve coordinates for the given address: configure the geocoding api key or provide latitude and longitude manually")
)

type ContactService struct {
	contactRepository domain.Repository
	accountRepository account.Repository
	geocoder          ports.Geocoder
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewContactService(
	contactRepository domain.Repository,
	accountRepository account.Repository,
	geocoder ports.Geocoder,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ContactService {
	return &ContactService{
		contactRepository: contactRepository,
		accountRepository: accountRepository,
		geocoder:          geocoder,
		mq:                mq,
		mCounter:          mCounter,
	}
}

// coordinateSource records where a contact's coordinates come from before
// anything is persisted: kept from the caller, resolved by the geocoder, or
// unresolved because the geocoder failed.
type (
	coordinateKind int

	coordinateSource struct {
		kind coordinateKind
		lat  float64
		lng  float64
		err  error
	}
)

const (
	coordsSupplied coordinateKind = iota
	coordsResolved
	coordsUnresolved
)

// resolveCoordinates picks the coordinate source for c. prev is the stored
// contact on update, nil on create. Caller coordinates are kept only when
// both are non-zero AND the postal address did not change; a mutated
// address always forces re-resolution, and 0.0 counts as absent (callers
// send it as a default, and no Brazilian address sits at 0,0).
func (cs *ContactService) resolveCoordinates(ctx context.Context, c *domain.Contact, prev *domain.Contact) coordinateSource {
	addressChanged := prev != nil && !prev.SameAddress(c)

	if c.HasCoordinates() && !addressChanged {
		return coordinateSource{kind: coordsSupplied, lat: c.Latitude, lng: c.Longitude}
	}

	loc, err := cs.geocoder.Resolve(ctx, geocoding.FormatAddress(
		c.Street, c.Number, c.Neighborhood, c.City, c.State, c.CEP,
	))
	if err != nil {
		return coordinateSource{kind: coordsUnresolved, err: err}
	}

	return coordinateSource{kind: coordsResolved, lat: loc.Lat, lng: loc.Lng}
}

// authorize loads a contact and checks it belongs to accountID. Existence
// is checked before ownership, so a missing id and a foreign id fail
// differently.
func (cs *ContactService) authorize(ctx context.Context, accountID uint64, id domain.ID) (*domain.Contact, error) {
	c, err := cs.contactRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	if c.AccountID != accountID {
		return nil, ErrContactAccessDenied
	}

	return c, nil
}

func (cs *ContactService) ListContacts(ctx context.Context, owner account.UUID, search string, req domain.PageRequest) (*domain.Page, error) {
	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	term := norm.NFC.String(strings.TrimSpace(search))
	if term != "" {
		return cs.contactRepository.SearchByOwner(ctx, uint64(accountID), term, req)
	}

	return cs.contactRepository.FetchByOwner(ctx, uint64(accountID), req)
}

func (cs *ContactService) GetContact(ctx context.Context, owner account.UUID, id domain.ID) (*domain.Contact, error) {
	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	return cs.authorize(ctx, uint64(accountID), id)
}

func (cs *ContactService) CreateContact(ctx context.Context, owner account.UUID, c domain.Contact) (*domain.Contact, error) {
	if !cpf.IsValid(c.CPF) {
		return nil, ErrInvalidCPF
	}

	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	exists, err := cs.contactRepository.ExistsByOwnerAndCPF(ctx, uint64(accountID), c.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCPFAlreadyRegistered
	}

	src := cs.resolveCoordinates(ctx, &c, nil)
	if src.kind == coordsUnresolved {
		return nil, fmt.Errorf("%w: %v", ErrCoordinatesUnresolved, src.err)
	}
	c.Latitude, c.Longitude = src.lat, src.lng
	c.AccountID = uint64(accountID)

	out, err := cs.contactRepository.Create(ctx, c)
	if err != nil {
		// the unique index wins races the pre-check cannot see
		if errors.Is(err, contactDB.ErrCPFAlreadyExists) {
			return nil, ErrCPFAlreadyRegistered
		}
		return nil, err
	}

	if out != nil {
		cs.mq.GetInputChan() <- mq.Event{
			Id:        uuid.New(),
			TS:        time.Now(),
			Method:    http.MethodPost,
			AccountID: owner.String(),
			Payload:   contactDTO.ToResponseContact(*out),
		}
	}

	cs.mCounter.WithLabelValues("contact_created_total").Inc()

	return out, nil
}

func (cs *ContactService) UpdateContact(ctx context.Context, owner account.UUID, id domain.ID, c domain.Contact) (*domain.Contact, error) {
	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	stored, err := cs.authorize(ctx, uint64(accountID), id)
	if err != nil {
		return nil, err
	}

	if !cpf.IsValid(c.CPF) {
		return nil, ErrInvalidCPF
	}

	exists, err := cs.contactRepository.ExistsByOwnerAndCPFExcluding(ctx, uint64(accountID), c.CPF, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCPFAlreadyRegistered
	}

	src := cs.resolveCoordinates(ctx, &c, stored)
	if src.kind == coordsUnresolved {
		return nil, fmt.Errorf("%w: %v", ErrCoordinatesUnresolved, src.err)
	}
	c.Latitude, c.Longitude = src.lat, src.lng
	c.ID = id
	c.AccountID = stored.AccountID

	out, err := cs.contactRepository.Update(ctx, c)
	if err != nil {
		if errors.Is(err, contactDB.ErrCPFAlreadyExists) {
			return nil, ErrCPFAlreadyRegistered
		}
		return nil, err
	}
	if out == nil {
		return nil, ErrContactNotFound
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    http.MethodPut,
		AccountID: owner.String(),
		Payload:   contactDTO.ToResponseContact(*out),
	}

	cs.mCounter.WithLabelValues("contact_updated_total").Inc()

	return out, nil
}

func (cs *ContactService) DeleteContact(ctx context.Context, owner account.UUID, id domain.ID) error {
	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return err
	}

	stored, err := cs.authorize(ctx, uint64(accountID), id)
	if err != nil {
		return err
	}

	if err = cs.contactRepository.Delete(ctx, id); err != nil {
		return err
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    http.MethodDelete,
		AccountID: owner.String(),
		Payload:   contactDTO.ToResponseContact(*stored),
	}

	cs.mCounter.WithLabelValues("contact_deleted_total").Inc()

	return nil
}

// CPFRegistered reports whether the owner already has a contact with this
// CPF. Invalid CPFs are simply "not registered", never an error.
func (cs *ContactService) CPFRegistered(ctx context.Context, owner account.UUID, c string) (bool, error) {
	if !cpf.IsValid(c) {
		return false, nil
	}

	accountID, err := cs.accountRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return false, err
	}

	return cs.contactRepository.ExistsByOwnerAndCPF(ctx, uint64(accountID), c)
}
