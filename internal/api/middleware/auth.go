package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// claimsKey is the echo context key holding *domain.Claims.
const claimsKey = "claims"

type claimsCtxKey struct{}

// Gate authenticates the bearer token and, when roles are given, requires the
// caller's role to be one of them. Authentication always runs first, so a
// request without a valid token never sees a Forbidden error.
func Gate(verifier ports.TokenVerifier, roles ...domain.Role) echo.MiddlewareFunc {
	allowed := newRoleSet(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return err
			}

			if !allowed.allows(claims.Role) {
				return domain.ErrForbidden
			}

			c.Set(claimsKey, claims)
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), claimsCtxKey{}, claims)))

			return next(c)
		}
	}
}

// ClaimsFrom returns the claims Gate attached to the echo context.
func ClaimsFrom(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// ClaimsFromContext returns the claims Gate attached to the request context.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*domain.Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrInvalidToken
	}
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", domain.ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
