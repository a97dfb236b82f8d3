package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	sharedidempotency "github.com/joshuarp/settlement-engine/internal/shared/idempotency"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

// NewHTTPIdempotencyMiddleware replays the stored response of a completed
// operator mutation. Keys are scoped per operator. A 5xx response is not
// stored so the operator can retry under the same key.
func NewHTTPIdempotencyMiddleware(store sharedidempotency.Store, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		if store == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "idempotency store is not available"})
		}

		operatorID := OperatorIDFromContext(c)
		if strings.TrimSpace(operatorID) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated operator"})
		}

		idempotencyKey := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing idempotency key"})
		}

		requestBody := append([]byte(nil), c.BodyRaw()...)
		request := sharedidempotency.Request{
			Scope:       "ops:" + operatorID,
			Key:         idempotencyKey,
			RequestHash: operationRequestHash(c.Method(), c.Path(), operatorID, requestBody),
		}

		decision, err := store.Acquire(c.Context(), request)
		if err != nil {
			logger.Error("idempotency acquire failed", "operator_id", operatorID, "key", idempotencyKey, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to acquire idempotency key"})
		}

		switch decision.Type {
		case sharedidempotency.DecisionReplay:
			if decision.ContentType != "" {
				c.Set(fiber.HeaderContentType, decision.ContentType)
			}
			if decision.StatusCode <= 0 {
				decision.StatusCode = fiber.StatusOK
			}

			return c.Status(decision.StatusCode).Send(decision.Body)
		case sharedidempotency.DecisionInProgress:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
		case sharedidempotency.DecisionConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "idempotency key reused with different payload"})
		case sharedidempotency.DecisionAcquired:
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid idempotency state"})
		}

		handlerErr := c.Next()
		statusCode := c.Response().StatusCode()

		if handlerErr != nil || statusCode >= fiber.StatusInternalServerError {
			if err := store.Release(c.Context(), request); err != nil {
				logger.Warn("idempotency release failed", "operator_id", operatorID, "key", idempotencyKey, "error", err)
			}
			return handlerErr
		}

		response := sharedidempotency.StoredResponse{
			StatusCode:  statusCode,
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}

		if err := store.Complete(c.Context(), request, response); err != nil {
			logger.Error("idempotency complete failed", "operator_id", operatorID, "key", idempotencyKey, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist idempotency response"})
		}

		return nil
	}
}

func operationRequestHash(method, path, operatorID string, body []byte) string {
	hasher := sha256.New()
	hasher.Write([]byte(strings.ToUpper(strings.TrimSpace(method))))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(path)))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(operatorID)))
	hasher.Write([]byte("\n"))
	hasher.Write(body)

	return hex.EncodeToString(hasher.Sum(nil))
}
