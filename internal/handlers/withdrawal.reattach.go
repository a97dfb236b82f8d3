package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/settlement-engine/internal/middlewares"
)

type WithdrawalReattachHandler struct {
	service SettlementOperationsService
	logger  *slog.Logger
}

type reattachRequest struct {
	TxHash string `json:"tx_hash"`
}

func NewWithdrawalReattachHandler(service SettlementOperationsService, logger *slog.Logger) *WithdrawalReattachHandler {
	return &WithdrawalReattachHandler{service: service, logger: logger}
}

// Register mounts the route behind the idempotency middleware so a retried
// mutation replays instead of running twice.
func (h *WithdrawalReattachHandler) Register(router fiber.Router, idempotency fiber.Handler) {
	router.Post("/withdrawals/:id/reattach", idempotency, h.Handle)
}

func (h *WithdrawalReattachHandler) Handle(c fiber.Ctx) error {
	var requestBody reattachRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	orderID := c.Params("id")
	detail, err := h.service.Reattach(c.Context(), orderID, requestBody.TxHash)
	if err != nil {
		return writeOperationError(c, h.logger, "reattach", err)
	}

	h.logger.Info("withdrawal reattached by operator",
		"operator_id", middlewares.OperatorIDFromContext(c),
		"order_id", orderID,
		"tx_hash", requestBody.TxHash,
	)
	return c.Status(fiber.StatusOK).JSON(detail)
}
