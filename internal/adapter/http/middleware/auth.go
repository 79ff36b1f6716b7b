package middleware

import (
	"context"
	"net/http"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/infrastructure/auth"
	"panaderia_api/internal/infrastructure/config"
	"panaderia_api/internal/infrastructure/logger"
	"panaderia_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type sessionKey struct{}

// WithSession stores the caller's session on the context.
func WithSession(ctx context.Context, s *entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session placed by Authenticate, or nil.
func SessionFrom(ctx context.Context) *entities.Session {
	s, _ := ctx.Value(sessionKey{}).(*entities.Session)
	return s
}

// Authenticate resolves a bearer token into a Session. Requests without an
// Authorization header pass through anonymously; handlers decide whether a
// session is mandatory. A present but invalid token is rejected.
func Authenticate(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := auth.BearerToken(header)
		if !ok {
			abortUnauthorized(c)
			return
		}
		session, err := auth.ParseSession(cfg, token)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("authenticate failed")
			abortUnauthorized(c)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), session.UserID)
		c.Request = c.Request.WithContext(WithSession(ctx, session))
		c.Next()
	}
}

// RequireSession rejects anonymous callers with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c.Request.Context()) == nil {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := SessionFrom(c.Request.Context())
		if s == nil {
			abortUnauthorized(c)
			return
		}
		if !s.IsAdmin() {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
