package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/settlement-engine/internal/middlewares"
)

type WithdrawalAbandonHandler struct {
	service SettlementOperationsService
	logger  *slog.Logger
}

func NewWithdrawalAbandonHandler(service SettlementOperationsService, logger *slog.Logger) *WithdrawalAbandonHandler {
	return &WithdrawalAbandonHandler{service: service, logger: logger}
}

// Register mounts the route behind the idempotency middleware so a retried
// mutation replays instead of running twice.
func (h *WithdrawalAbandonHandler) Register(router fiber.Router, idempotency fiber.Handler) {
	router.Post("/withdrawals/:id/abandon", idempotency, h.Handle)
}

func (h *WithdrawalAbandonHandler) Handle(c fiber.Ctx) error {
	orderID := c.Params("id")

	detail, err := h.service.Abandon(c.Context(), orderID)
	if err != nil {
		return writeOperationError(c, h.logger, "abandon", err)
	}

	h.logger.Warn("withdrawal abandoned by operator",
		"operator_id", middlewares.OperatorIDFromContext(c),
		"order_id", orderID,
	)
	return c.Status(fiber.StatusOK).JSON(detail)
}
