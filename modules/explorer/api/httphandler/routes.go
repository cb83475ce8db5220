package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	router.Get("/block/:hash", h.GetBlock)
	router.Get("/tx/:txid", h.GetTransaction)
	router.Get("/latest_blocks", h.GetLatestBlocks)
	return nil
}
