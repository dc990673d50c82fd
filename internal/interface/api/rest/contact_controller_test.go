package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/application/services"
	"contacts-api/internal/domain/account"
	domain "contacts-api/internal/domain/contact"
	jwtSvc "contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/interface/api/rest/dto/contact"
	"contacts-api/internal/interface/api/rest/middleware"
)

type FakeContactService struct {
	ListContactsFunc  func(ctx context.Context, owner account.UUID, search string, req domain.PageRequest) (*domain.Page, error)
	GetContactFunc    func(ctx context.Context, owner account.UUID, id domain.ID) (*domain.Contact, error)
	CreateContactFunc func(ctx context.Context, owner account.UUID, c domain.Contact) (*domain.Contact, error)
	UpdateContactFunc func(ctx context.Context, owner account.UUID, id domain.ID, c domain.Contact) (*domain.Contact, error)
	DeleteContactFunc func(ctx context.Context, owner account.UUID, id domain.ID) error
	CPFRegisteredFunc func(ctx context.Context, owner account.UUID, cpf string) (bool, error)
}

func (f *FakeContactService) ListContacts(ctx context.Context, owner account.UUID, search string, req domain.PageRequest) (*domain.Page, error) {
	if f.ListContactsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListContactsFunc(ctx, owner, search, req)
}
func (f *FakeContactService) GetContact(ctx context.Context, owner account.UUID, id domain.ID) (*domain.Contact, error) {
	if f.GetContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetContactFunc(ctx, owner, id)
}
func (f *FakeContactService) CreateContact(ctx context.Context, owner account.UUID, c domain.Contact) (*domain.Contact, error) {
	if f.CreateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateContactFunc(ctx, owner, c)
}
func (f *FakeContactService) UpdateContact(ctx context.Context, owner account.UUID, id domain.ID, c domain.Contact) (*domain.Contact, error) {
	if f.UpdateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateContactFunc(ctx, owner, id, c)
}
func (f *FakeContactService) DeleteContact(ctx context.Context, owner account.UUID, id domain.ID) error {
	if f.DeleteContactFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteContactFunc(ctx, owner, id)
}
func (f *FakeContactService) CPFRegistered(ctx context.Context, owner account.UUID, cpf string) (bool, error) {
	if f.CPFRegisteredFunc == nil {
		return false, errors.New("not used")
	}
	return f.CPFRegisteredFunc(ctx, owner, cpf)
}

func setupContactRouter(t *testing.T, cs ports.ContactService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	cc := &ContactController{
		contactService: cs,
		logger:         zap.NewNop(),
	}

	auth := middleware.AuthMiddleware(jwtSvc.New("test-secret"))
	r.GET(RouteContacts, auth, cc.ListContactsHandler)
	r.GET(RouteContact, auth, cc.GetContactHandler)
	r.GET(RouteContactCPF, auth, cc.CPFRegisteredHandler)
	r.POST(RouteContacts, auth, cc.CreateContactHandler)
	r.PUT(RouteContact, auth, cc.UpdateContactHandler)
	r.DELETE(RouteContact, auth, cc.DeleteContactHandler)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func SignJWT(secret, accountID, email string, exp time.Duration) (string, error) {
	type Claims struct {
		AccountID string `json:"account_id"`
		Email     string `json:"email"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func authHeader(t *testing.T, owner account.UUID) map[string]string {
	t.Helper()
	tok, err := SignJWT("test-secret", owner.String(), "ana@example.com", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func validContactRequest() contact.Request {
	return contact.Request{
		Name:         "Ana Souza",
		CPF:          "11144477735",
		Phone:        "11987654321",
		CEP:          "01310100",
		Street:       "Avenida Paulista",
		Number:       "1578",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}
}

func someDomainContact() *domain.Contact {
	return &domain.Contact{
		ID:           domain.ID(7),
		AccountID:    1,
		Name:         "Ana Souza",
		CPF:          "11144477735",
		Phone:        "11987654321",
		CEP:          "01310100",
		Street:       "Avenida Paulista",
		Number:       "1578",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		Latitude:     -23.5614,
		Longitude:    -46.6559,
	}
}

func TestContactController_CreateContactHandler(t *testing.T) {
	owner := uuid.New()
	validReq := validContactRequest()

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing auth header",
			headers:    nil,
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name: "401 invalid token signature",
			headers: func() map[string]string {
				tok, _ := SignJWT("other-secret", owner.String(), "x@example.com", time.Hour)
				return map[string]string{"Authorization": "Bearer " + tok}
			}(),
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:       "400 invalid JSON",
			headers:    authHeader(t, owner),
			body:       "{bad json",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "400 validation error",
			headers: authHeader(t, owner),
			body: contact.Request{
				Name:  "A",
				CPF:   "123",
				Phone: "1",
				CEP:   "999",
				State: "XYZ",
			},
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "400 invalid cpf checksum",
			headers: authHeader(t, owner),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, o account.UUID, c domain.Contact) (*domain.Contact, error) {
						return nil, services.ErrInvalidCPF
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrInvalidCPF.Error(),
		},
		{
			name:    "409 cpf already registered",
			headers: authHeader(t, owner),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, o account.UUID, c domain.Contact) (*domain.Contact, error) {
						return nil, services.ErrCPFAlreadyRegistered
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    services.ErrCPFAlreadyRegistered.Error(),
		},
		{
			name:    "502 geocoder failure",
			headers: authHeader(t, owner),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, o account.UUID, c domain.Contact) (*domain.Contact, error) {
						return nil, fmt.Errorf("%w: no results", services.ErrCoordinatesUnresolved)
					},
				}
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:    "500 service error",
			headers: authHeader(t, owner),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, o account.UUID, c domain.Contact) (*domain.Contact, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "internal error",
		},
		{
			name:    "201 success",
			headers: authHeader(t, owner),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, o account.UUID, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, owner, o)
						assert.Equal(t, validReq.CPF, c.CPF)
						return someDomainContact(), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodPost, RouteContacts, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_GetContactHandler(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		contactID  string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			contactID:  "abc",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "contact_id must be a positive integer",
		},
		{
			name:      "404 not found",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					GetContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) (*domain.Contact, error) {
						return nil, services.ErrContactNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    services.ErrContactNotFound.Error(),
		},
		{
			name:      "403 foreign contact",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					GetContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) (*domain.Contact, error) {
						return nil, services.ErrContactAccessDenied
					},
				}
			},
			wantStatus: http.StatusForbidden,
			wantErr:    services.ErrContactAccessDenied.Error(),
		},
		{
			name:      "200 success",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					GetContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) (*domain.Contact, error) {
						assert.Equal(t, domain.ID(7), id)
						return someDomainContact(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodGet, RouteContacts+"/"+tt.contactID, nil, authHeader(t, owner))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_ListContactsHandler(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		query      string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 bad page",
			query:      "?page=-1",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "page must be a non-negative integer",
		},
		{
			name:       "400 bad size",
			query:      "?size=500",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "size must be between 1 and 100",
		},
		{
			name:       "400 bad sort field",
			query:      "?sort=phone,asc",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "sort field must be one of: name, cpf, city, created_at",
		},
		{
			name:  "200 defaults",
			query: "",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					ListContactsFunc: func(ctx context.Context, o account.UUID, search string, req domain.PageRequest) (*domain.Page, error) {
						assert.Equal(t, 0, req.Page)
						assert.Equal(t, domain.DefaultPageSize, req.Size)
						assert.Equal(t, "name", req.SortBy)
						assert.False(t, req.SortDesc)
						return domain.NewPage(domain.Contacts{someDomainContact()}, req, 1), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "200 search and sort forwarded",
			query: "?search=ana&page=2&size=5&sort=created_at,desc",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					ListContactsFunc: func(ctx context.Context, o account.UUID, search string, req domain.PageRequest) (*domain.Page, error) {
						assert.Equal(t, "ana", search)
						assert.Equal(t, 2, req.Page)
						assert.Equal(t, 5, req.Size)
						assert.Equal(t, "created_at", req.SortBy)
						assert.True(t, req.SortDesc)
						return domain.NewPage(nil, req, 0), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodGet, RouteContacts+tt.query, nil, authHeader(t, owner))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_DeleteContactHandler(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		contactID  string
		mockCS     func() ports.ContactService
		wantStatus int
	}{
		{
			name:      "404 not found",
			contactID: "9",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) error {
						return services.ErrContactNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "403 foreign contact",
			contactID: "9",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) error {
						return services.ErrContactAccessDenied
					},
				}
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "204 success",
			contactID: "9",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, o account.UUID, id domain.ID) error {
						assert.Equal(t, domain.ID(9), id)
						return nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodDelete, RouteContacts+"/"+tt.contactID, nil, authHeader(t, owner))
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestContactController_CPFRegisteredHandler(t *testing.T) {
	owner := uuid.New()

	r := setupContactRouter(t, &FakeContactService{
		CPFRegisteredFunc: func(ctx context.Context, o account.UUID, cpf string) (bool, error) {
			return cpf == "11144477735", nil
		},
	})

	rr := doReq(t, r, http.MethodGet, RouteContacts+"/cpf/11144477735", nil, authHeader(t, owner))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["registered"])

	rr = doReq(t, r, http.MethodGet, RouteContacts+"/cpf/52998224725", nil, authHeader(t, owner))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["registered"])
}

func TestContactController_UpdateContactHandler(t *testing.T) {
	owner := uuid.New()
	validReq := validContactRequest()

	tests := []struct {
		name       string
		contactID  string
		body       any
		mockCS     func() ports.ContactService
		wantStatus int
	}{
		{
			name:       "400 invalid id",
			contactID:  "0",
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "409 cpf taken",
			contactID: "7",
			body:      validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					UpdateContactFunc: func(ctx context.Context, o account.UUID, id domain.ID, c domain.Contact) (*domain.Contact, error) {
						return nil, services.ErrCPFAlreadyRegistered
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:      "200 success",
			contactID: "7",
			body:      validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					UpdateContactFunc: func(ctx context.Context, o account.UUID, id domain.ID, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, domain.ID(7), id)
						return someDomainContact(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodPut, RouteContacts+"/"+tt.contactID, tt.body, authHeader(t, owner))
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
