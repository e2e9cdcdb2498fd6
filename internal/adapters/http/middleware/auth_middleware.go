package middleware

import (
	"crypto/subtle"

	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader is the request header carrying the client credential
const APIKeyHeader = "x-api-key"

// KeyVerifier reports whether a presented API key is valid.
// Routes depend on this indirection, not on the static-secret scheme,
// so a stronger credential check can replace it without touching them.
type KeyVerifier func(key string) bool

// StaticKeyVerifier verifies against a single shared secret
// using a constant-time comparison
func StaticKeyVerifier(secret string) KeyVerifier {
	return func(key string) bool {
		return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1
	}
}

// APIKeyAuth creates authentication middleware for mutating routes.
// Missing key → 401, wrong key → 403.
func APIKeyAuth(verify KeyVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get(APIKeyHeader)

		if apiKey == "" {
			return response.Unauthorized(c, "Unauthorized: API Key is missing")
		}

		if !verify(apiKey) {
			return response.Forbidden(c, "Forbidden: Invalid API Key")
		}

		return c.Next()
	}
}
