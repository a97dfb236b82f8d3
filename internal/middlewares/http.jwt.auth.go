package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	sharedjwt "github.com/joshuarp/settlement-engine/internal/shared/jwt"
)

const (
	LocalOperatorID = "operator_id"
	LocalJWTClaims  = "jwt_claims"
)

// NewHTTPJWTMiddleware authenticates operators by bearer token. Every scope in
// requiredScopes must be present on the token.
func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager, requiredScopes ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := tokenManager.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		for _, scope := range requiredScopes {
			if !claims.HasScope(scope) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "insufficient scope",
				})
			}
		}

		c.Locals(LocalOperatorID, claims.Subject)
		c.Locals(LocalJWTClaims, claims)
		c.SetContext(sharedjwt.SetClaims(c.Context(), claims))
		return c.Next()
	}
}

func OperatorIDFromContext(c fiber.Ctx) string {
	operatorID, _ := c.Locals(LocalOperatorID).(string)
	return operatorID
}
