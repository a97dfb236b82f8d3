package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

type ProcessDueHandler struct {
	service SettlementOperationsService
	logger  *slog.Logger
}

func NewProcessDueHandler(service SettlementOperationsService, logger *slog.Logger) *ProcessDueHandler {
	return &ProcessDueHandler{service: service, logger: logger}
}

func (h *ProcessDueHandler) Register(router fiber.Router) {
	router.Post("/chains/:chain/process", h.Handle)
}

func (h *ProcessDueHandler) Handle(c fiber.Ctx) error {
	chainID := c.Params("chain")

	summary, err := h.service.ProcessDue(c.Context(), chainID)
	if err != nil {
		return writeOperationError(c, h.logger, "process_due", err)
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
