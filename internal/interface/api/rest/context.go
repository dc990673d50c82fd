package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contacts-api/internal/domain/account"
	"contacts-api/internal/interface/api/rest/middleware"
	"contacts-api/internal/interface/api/rest/validator"
)

// ownerFromCtx extracts the authenticated account UUID stored by the auth
// middleware. A missing or malformed value aborts with 401; handlers just
// return when ok is false.
func ownerFromCtx(c *gin.Context) (account.UUID, bool) {
	v, exists := c.Get(middleware.CtxAccountID)
	if !exists {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing authenticated account"},
		)
		return account.UUID{}, false
	}

	s, _ := v.(string)
	ok, id := validator.IsUUID(s)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid authenticated account"},
		)
		return account.UUID{}, false
	}

	return id, true
}
