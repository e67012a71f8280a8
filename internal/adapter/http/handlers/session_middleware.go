package handlers

import (
	"net/http"
	"strings"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// SessionMiddleware rejects requests without a valid bearer token and stashes
// the resolved account on the gin context for downstream handlers.
func SessionMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		user, err := auth.Session(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the account resolved by SessionMiddleware, if any.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func abortUnauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_SESSION", "Session is invalid or expired", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
