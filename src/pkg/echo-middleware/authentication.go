// Package echomw provides the Echo middlewares of the report preview server.
package echomw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

const (
	// Env var holding the preview token.
	EnvPreviewBearerToken = "REPORT_PREVIEW_BEARER_TOKEN"

	// Realm for WWW-Authenticate header.
	authRealm = "remote-report-preview"
)

/*
RequireBearerToken validates Authorization: Bearer <token> against expected.
On failure responds 401. An empty expected token rejects every request.
*/
func RequireBearerToken(expected string) echo.MiddlewareFunc {
	expected = strings.TrimSpace(expected)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expected == "" {
				return unauthorized(c)
			}

			received, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return unauthorized(c)
			}

			if subtle.ConstantTimeCompare([]byte(received), []byte(expected)) != 1 {
				return unauthorized(c)
			}

			return next(c)
		}
	}
}

// bearerToken extracts the token; the scheme is case-insensitive.
func bearerToken(header string) (token string, ok bool) {
	const bearer = "bearer "

	auth := strings.TrimSpace(header)
	if len(auth) < len(bearer) || !strings.EqualFold(auth[:len(bearer)], bearer) {
		return "", false
	}

	token = strings.TrimSpace(auth[len(bearer):])
	return token, token != ""
}

func unauthorized(c echo.Context) error {
	LogRouteAccess(c, tl.Warning, "Unauthorized preview request", palette.Yellow)

	c.Response().Header().Set("WWW-Authenticate", `Bearer realm="`+authRealm+`"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "unauthorized",
	})
}
