package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common"
	"github.com/gaze-network/block-explorer/core/types"
)

// GetBlock resolves a raw block hash to the node's verbose block decode.
// A hash failing validation is reported as errs.InvalidArgument without
// calling the node.
func (u *Usecase) GetBlock(ctx context.Context, rawHash string) (*types.Block, error) {
	hash, err := common.ParseHash(rawHash)
	if err != nil {
		return nil, errors.Wrap(err, "invalid block hash")
	}

	block, err := u.bitcoinRPC.GetBlockVerbose(ctx, hash)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetBlockVerbose")
	}

	return block, nil
}
