package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
	"github.com/gaze-network/block-explorer/pkg/logger"
	"github.com/gaze-network/block-explorer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type getBlockRequest struct {
	Hash string `params:"hash"`
}

func (h *HttpHandler) GetBlock(ctx *fiber.Ctx) error {
	var req getBlockRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	blk, err := h.usecase.GetBlock(ctx.UserContext(), req.Hash)
	if err != nil {
		if errors.Is(err, errs.InvalidArgument) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid block hash")
		}
		// Not-found is deliberately not distinguished from other upstream
		// failures on this endpoint.
		logger.ErrorContext(ctx.UserContext(), "Failed to retrieve block from node",
			slogx.Error(err),
			slogx.String("blockHash", req.Hash),
		)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve block information")
	}

	return errors.WithStack(ctx.JSON(newBlockResponse(blk)))
}
