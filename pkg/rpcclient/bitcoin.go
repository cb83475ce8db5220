package rpcclient

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/core/types"
)

// GetBlockCount returns the height of the most-work fully-validated chain.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	result, err := c.Call(ctx, "getblockcount")
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var height int64
	if err := json.Unmarshal(result, &height); err != nil {
		return 0, errors.Wrapf(ErrDecode, "invalid getblockcount result: %v", err)
	}
	return height, nil
}

// GetBlockHash returns the hash of the block at the given height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	result, err := c.Call(ctx, "getblockhash", height)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var hash string
	if err := json.Unmarshal(result, &hash); err != nil {
		return "", errors.Wrapf(ErrDecode, "invalid getblockhash result: %v", err)
	}
	return hash, nil
}

// GetBlockVerbose fetches the decoded block for the given hash.
func (c *Client) GetBlockVerbose(ctx context.Context, hash string) (*types.Block, error) {
	result, err := c.Call(ctx, "getblock", hash)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var block types.Block
	if err := json.Unmarshal(result, &block); err != nil {
		return nil, errors.Wrapf(ErrDecode, "invalid getblock result: %v", err)
	}
	return &block, nil
}

// GetRawTransactionVerbose fetches the decoded transaction for the given txid.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txid string) (*types.Transaction, error) {
	result, err := c.Call(ctx, "getrawtransaction", txid, true)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var tx types.Transaction
	if err := json.Unmarshal(result, &tx); err != nil {
		return nil, errors.Wrapf(ErrDecode, "invalid getrawtransaction result: %v", err)
	}
	return &tx, nil
}

// Ping verifies node connectivity and credentials with a getblockcount
// round trip.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetBlockCount(ctx)
	return errors.WithStack(err)
}
