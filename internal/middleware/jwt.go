package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's numeric subject into the request context under
// "user_id". The provided secret must match the one used when issuing
// tokens. This middleware should wrap protected routes; handlers read the
// authenticated user via CurrentUserID.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := bearerUserID(c, secret)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}

// OptionalJWTAuth is like JWTAuth but never rejects the request: a missing
// or invalid token simply leaves the viewer anonymous. The market detail
// endpoint uses this so that one route serves all three access tiers; an
// unverifiable identity degrades to the public tier instead of erroring.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := bearerUserID(c, secret); ok {
				c.Set("user_id", userID)
			}
			return next(c)
		}
	}
}

// bearerUserID extracts and validates the Authorization header, returning
// the token's subject as a user id. ok is false when the header is absent,
// the signature is bad, or the claims are not in the expected shape.
func bearerUserID(c echo.Context, secret string) (uint64, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, false
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any signing method other than HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	// JSON numbers decode as float64; the sub claim is a numeric user id.
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, false
	}
	return uint64(sub), true
}

// CurrentUserID returns the authenticated user's id from the context, or 0
// when the request carries no valid session.
func CurrentUserID(c echo.Context) uint64 {
	if v, ok := c.Get("user_id").(uint64); ok {
		return v
	}
	return 0
}
