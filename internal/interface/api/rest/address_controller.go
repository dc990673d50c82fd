package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/infrastructure/viacep"
	"contacts-api/internal/interface/api/rest/middleware"
	"contacts-api/internal/interface/api/rest/validator"
)

type AddressController struct {
	postal ports.PostalLookup
	logger *zap.Logger
}

func NewAddressController(
	r *gin.Engine,
	postal ports.PostalLookup,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AddressController {
	ac := &AddressController{
		postal: postal,
		logger: logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteAddressCEP, auth, ac.LookupCEPHandler)
	r.GET(RouteAddressSearch, auth, ac.SearchAddressesHandler)

	return ac
}

func (ac *AddressController) LookupCEPHandler(c *gin.Context) {
	cep := c.Param("cep")
	if !validator.IsCEP(cep) {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "cep must contain exactly 8 digits"},
		)
		return
	}

	addr, err := ac.postal.LookupCEP(c.Request.Context(), cep)
	if err != nil {
		if errors.Is(err, viacep.ErrCEPNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to look up cep"},
		)
		ac.logger.Error("LookupCEP() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, addr)
}

// SearchAddressesHandler is best effort by contract: upstream failures show
// up as an empty list, not an error.
func (ac *AddressController) SearchAddressesHandler(c *gin.Context) {
	uf := strings.TrimSpace(c.Query("uf"))
	city := strings.TrimSpace(c.Query("city"))
	street := strings.TrimSpace(c.Query("street"))

	if len(uf) != 2 || len(city) < 3 || len(street) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "uf must have 2 characters, city and street at least 3",
		})
		return
	}

	addrs := ac.postal.SearchAddresses(c.Request.Context(), uf, city, street)

	c.JSON(http.StatusOK, gin.H{"data": addrs})
}
