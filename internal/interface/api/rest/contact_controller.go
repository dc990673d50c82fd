package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/application/services"
	domain "contacts-api/internal/domain/contact"
	"contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/interface/api/rest/dto/contact"
	"contacts-api/internal/interface/api/rest/middleware"
	"contacts-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	contactService ports.ContactService
	logger         *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	contactService ports.ContactService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ContactController {
	cc := &ContactController{
		contactService: contactService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteContacts, auth, cc.ListContactsHandler)
	r.GET(RouteContact, auth, cc.GetContactHandler)
	r.GET(RouteContactCPF, auth, cc.CPFRegisteredHandler)
	r.POST(RouteContacts, auth, cc.CreateContactHandler)
	r.PUT(RouteContact, auth, cc.UpdateContactHandler)
	r.DELETE(RouteContact, auth, cc.DeleteContactHandler)

	return cc
}

func (cc *ContactController) ListContactsHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	size, err := validator.ValidateSize(c.Query("size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortBy, sortDesc, err := validator.ValidateSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := domain.PageRequest{
		Page:     page,
		Size:     size,
		SortBy:   sortBy,
		SortDesc: sortDesc,
	}

	result, err := cc.contactService.ListContacts(c.Request.Context(), owner, c.Query("search"), req)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to list contacts"},
		)
		cc.logger.Error("ListContacts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ToResponsePage(result))
}

func (cc *ContactController) GetContactHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := cc.contactService.GetContact(c.Request.Context(), owner, id)
	if err != nil {
		cc.writeContactError(c, "GetContact()", err)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*out))
}

func (cc *ContactController) CreateContactHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	out, err := cc.contactService.CreateContact(c.Request.Context(), owner, contact.ToDomainContact(req))
	if err != nil {
		cc.writeContactError(c, "CreateContact()", err)
		return
	}

	c.JSON(http.StatusCreated, contact.ToResponseContact(*out))
}

func (cc *ContactController) UpdateContactHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req contact.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	out, err := cc.contactService.UpdateContact(c.Request.Context(), owner, id, contact.ToDomainContact(req))
	if err != nil {
		cc.writeContactError(c, "UpdateContact()", err)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*out))
}

func (cc *ContactController) DeleteContactHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = cc.contactService.DeleteContact(c.Request.Context(), owner, id); err != nil {
		cc.writeContactError(c, "DeleteContact()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *ContactController) CPFRegisteredHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	registered, err := cc.contactService.CPFRegistered(c.Request.Context(), owner, c.Param("cpf"))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to check cpf"},
		)
		cc.logger.Error("CPFRegistered() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"registered": registered})
}

// writeContactError maps service sentinels onto HTTP statuses; anything
// unmapped is a 500 and gets logged.
func (cc *ContactController) writeContactError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCPF):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCPFAlreadyRegistered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrContactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrContactAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCoordinatesUnresolved):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		cc.logger.Error(op+" error", zap.Error(err))
	}
}
