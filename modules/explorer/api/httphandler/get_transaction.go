package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
	"github.com/gaze-network/block-explorer/pkg/logger"
	"github.com/gaze-network/block-explorer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type getTransactionRequest struct {
	TxId string `params:"txid"`
}

func (h *HttpHandler) GetTransaction(ctx *fiber.Ctx) error {
	var req getTransactionRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	tx, err := h.usecase.GetTransaction(ctx.UserContext(), req.TxId)
	if err != nil {
		// The documented contract has no 400 path here: a malformed id
		// surfaces the same generic failure as an unknown one.
		if errors.Is(err, errs.InvalidArgument) {
			logger.DebugContext(ctx.UserContext(), "Rejected malformed transaction id", slogx.String("txid", req.TxId))
		} else {
			logger.ErrorContext(ctx.UserContext(), "Failed to retrieve transaction from node",
				slogx.Error(err),
				slogx.String("txid", req.TxId),
			)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve transaction information")
	}

	return errors.WithStack(ctx.JSON(newTransactionResponse(tx)))
}
