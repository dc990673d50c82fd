package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/application/services"
	"contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/interface/api/rest/dto/auth"
	"contacts-api/internal/interface/api/rest/middleware"
)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	r.DELETE(RouteAccount, middleware.AuthMiddleware(jwtService), ac.DeleteAccountHandler)

	return ac
}

// DeleteAccountHandler removes the authenticated account and all of its
// contacts. The password travels in the body: a bearer token alone is not
// enough for a destructive, unrecoverable operation.
func (ac *AccountController) DeleteAccountHandler(c *gin.Context) {
	owner, ok := ownerFromCtx(c)
	if !ok {
		return
	}

	var req auth.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	err := ac.accountService.DeleteAccount(c.Request.Context(), owner, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to delete account"},
			)
			ac.logger.Error("DeleteAccount() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
