package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/core/types"
)

// latestBlockCount is the number of blocks returned by GetLatestBlocks,
// fewer only when the chain itself is shorter.
const latestBlockCount = 10

// GetLatestBlocks walks the chain backward from the current tip and returns
// the most recent blocks, most recent first.
//
// The tip height is read once: when a new block arrives mid-walk, the result
// is still a consistent window as of that read, at most one block behind the
// absolute tip. Any failed node call fails the whole walk instead of
// returning a partial list, since a silently shortened list would misreport
// recency.
func (u *Usecase) GetLatestBlocks(ctx context.Context) ([]*types.Block, error) {
	tipHeight, err := u.bitcoinRPC.GetBlockCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetBlockCount")
	}

	blocks := make([]*types.Block, 0, latestBlockCount)
	for i := int64(0); i < latestBlockCount; i++ {
		height := tipHeight - i
		if height < 0 {
			break
		}

		hash, err := u.bitcoinRPC.GetBlockHash(ctx, height)
		if err != nil {
			return nil, errors.Wrapf(err, "can't resolve block hash at height %d", height)
		}

		block, err := u.bitcoinRPC.GetBlockVerbose(ctx, hash)
		if err != nil {
			return nil, errors.Wrapf(err, "can't fetch block %s at height %d", hash, height)
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}
