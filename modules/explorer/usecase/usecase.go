package usecase

import (
	"github.com/gaze-network/block-explorer/modules/explorer/datagateway"
)

type Usecase struct {
	bitcoinRPC datagateway.BitcoinRPC
}

func New(bitcoinRPC datagateway.BitcoinRPC) *Usecase {
	return &Usecase{
		bitcoinRPC: bitcoinRPC,
	}
}
