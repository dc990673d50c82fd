package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/application/services"
	"contacts-api/internal/interface/api/rest/dto/auth"
	"contacts-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
	authService    ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	accountService ports.AccountService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
		authService:    authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register account"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, auth.ToResponseAccount(*a))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get an account"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(a, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("account_uuid", a.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Account:     auth.ToResponseAccount(*a),
	})
}
