package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/core/types"
	"github.com/gaze-network/block-explorer/pkg/logger"
	"github.com/gaze-network/block-explorer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func (h *HttpHandler) GetLatestBlocks(ctx *fiber.Ctx) error {
	blocks, err := h.usecase.GetLatestBlocks(ctx.UserContext())
	if err != nil {
		logger.ErrorContext(ctx.UserContext(), "Failed to retrieve latest blocks from node", slogx.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve latest blocks")
	}

	resp := lo.Map(blocks, func(b *types.Block, _ int) block {
		return newBlockResponse(b)
	})
	return errors.WithStack(ctx.JSON(resp))
}
