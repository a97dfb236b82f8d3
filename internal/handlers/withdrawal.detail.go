package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

type WithdrawalDetailHandler struct {
	service SettlementOperationsService
	logger  *slog.Logger
}

func NewWithdrawalDetailHandler(service SettlementOperationsService, logger *slog.Logger) *WithdrawalDetailHandler {
	return &WithdrawalDetailHandler{service: service, logger: logger}
}

func (h *WithdrawalDetailHandler) Register(router fiber.Router) {
	router.Get("/withdrawals/:id", h.Handle)
}

func (h *WithdrawalDetailHandler) Handle(c fiber.Ctx) error {
	detail, err := h.service.GetWithdrawal(c.Context(), c.Params("id"))
	if err != nil {
		return writeOperationError(c, h.logger, "get_withdrawal", err)
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}
