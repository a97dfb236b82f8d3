package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/middlewares"
	"github.com/joshuarp/settlement-engine/internal/services"
)

type SettlementOperationsService interface {
	ProcessDue(ctx context.Context, chainID string) (vo.ProcessSummary, error)
	GetWithdrawal(ctx context.Context, orderID string) (vo.WithdrawalDetail, error)
	Reattach(ctx context.Context, orderID, txHash string) (vo.WithdrawalDetail, error)
	Abandon(ctx context.Context, orderID string) (vo.WithdrawalDetail, error)
}

// writeOperationError maps service errors to responses. Anything unexpected
// is logged and hidden behind a 500.
func writeOperationError(c fiber.Ctx, logger *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, vo.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "withdrawal not found"})
	case errors.Is(err, vo.ErrUnknownChain):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown chain"})
	case errors.Is(err, vo.ErrBroadcastInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "withdrawal broadcast may still be in flight, retry later"})
	case errors.Is(err, vo.ErrStaleTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "withdrawal is not in a state that allows this operation"})
	case errors.Is(err, services.ErrTxHashRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tx_hash is required"})
	case errors.Is(err, vo.ErrTransactionNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "transaction not found on chain"})
	case errors.Is(err, vo.ErrRPCUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "chain rpc unavailable"})
	default:
		logger.Error("settlement operation failed",
			"operation", op,
			"operator_id", middlewares.OperatorIDFromContext(c),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
