package api

import (
	"github.com/gaze-network/block-explorer/modules/explorer/api/httphandler"
	"github.com/gaze-network/block-explorer/modules/explorer/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
