package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shubham-3256/millets-cafe/internal/api/middleware"
	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry a create without duplicating it.
const HeaderIdempotencyKey = "Idempotency-Key"

// ctxClaims returns the claims the Gate middleware attached. A handler mounted
// without the gate gets ErrMissingToken instead of an anonymous caller.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.SubjectID == "" {
		return nil, domain.ErrMissingToken
	}
	return claims, nil
}

// listFilter reads the optional ?status= query parameter.
func listFilter(c echo.Context) (ports.RecordFilter, error) {
	var f ports.RecordFilter
	if s := c.QueryParam("status"); s != "" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			return f, err
		}
		f.Status = status
	}
	return f, nil
}

func idempotencyKey(c echo.Context) string {
	return c.Request().Header.Get(HeaderIdempotencyKey)
}

// createdStatus is 201 for a new record and 200 for an idempotent replay.
func createdStatus(replayed bool) int {
	if replayed {
		return http.StatusOK
	}
	return http.StatusCreated
}
