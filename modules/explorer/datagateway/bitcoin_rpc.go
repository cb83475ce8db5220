package datagateway

import (
	"context"

	"github.com/gaze-network/block-explorer/core/types"
)

// BitcoinRPC is the slice of the node's RPC surface the explorer consumes.
// Implemented by pkg/rpcclient.
type BitcoinRPC interface {
	GetBlockCount(ctx context.Context) (int64, error)
	GetBlockHash(ctx context.Context, height int64) (string, error)
	GetBlockVerbose(ctx context.Context, hash string) (*types.Block, error)
	GetRawTransactionVerbose(ctx context.Context, txid string) (*types.Transaction, error)
}
