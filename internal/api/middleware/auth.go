package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/auth-service/internal/api/handler"
	"github.com/restaurant-platform/auth-service/internal/api/metrics"
	"github.com/restaurant-platform/auth-service/internal/core/domain"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
)

// Auth extracts the bearer token, authenticates it through the service, and
// injects the resolved profile into the request context. A missing or
// malformed Authorization header fails exactly like an invalid token.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
				return domain.ErrAuthenticationFailed
			}

			profile, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				return err
			}

			metrics.TokenValidationsTotal.WithLabelValues("success").Inc()
			c.Set(handler.ProfileContextKey, profile)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "orphaned"
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return "rejected"
	default:
		return "error"
	}
}
