package usecase

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/core/types"
)

// fakeChain is an in-memory chain of tip+1 blocks with deterministic
// 64-hex hashes, standing in for the node RPC surface.
type fakeChain struct {
	tip    int64
	hashes map[int64]string
	txs    map[string]*types.Transaction

	countCalls int
	hashCalls  int
	blockCalls int
	txCalls    int

	countErr error
	hashErr  map[int64]error
	blockErr map[string]error
	txErr    map[string]error
}

func newFakeChain(tip int64) *fakeChain {
	c := &fakeChain{
		tip:      tip,
		hashes:   make(map[int64]string),
		txs:      make(map[string]*types.Transaction),
		hashErr:  make(map[int64]error),
		blockErr: make(map[string]error),
		txErr:    make(map[string]error),
	}
	for height := int64(0); height <= tip; height++ {
		c.hashes[height] = blockHashAt(height)
	}
	return c
}

func blockHashAt(height int64) string {
	return fmt.Sprintf("%064d", height)
}

func (c *fakeChain) GetBlockCount(ctx context.Context) (int64, error) {
	c.countCalls++
	if c.countErr != nil {
		return 0, c.countErr
	}
	return c.tip, nil
}

func (c *fakeChain) GetBlockHash(ctx context.Context, height int64) (string, error) {
	c.hashCalls++
	if err := c.hashErr[height]; err != nil {
		return "", err
	}
	hash, ok := c.hashes[height]
	if !ok {
		return "", errors.Newf("block height out of range: %d", height)
	}
	return hash, nil
}

func (c *fakeChain) GetBlockVerbose(ctx context.Context, hash string) (*types.Block, error) {
	c.blockCalls++
	if err := c.blockErr[hash]; err != nil {
		return nil, err
	}
	for height, candidate := range c.hashes {
		if candidate != hash {
			continue
		}
		block := &types.Block{
			Hash:          hash,
			Height:        height,
			Confirmations: c.tip - height + 1,
			Tx:            []string{},
		}
		if height > 0 {
			block.PreviousBlockHash = c.hashes[height-1]
		}
		if height < c.tip {
			block.NextBlockHash = c.hashes[height+1]
		}
		return block, nil
	}
	return nil, errors.New("Block not found")
}

func (c *fakeChain) GetRawTransactionVerbose(ctx context.Context, txid string) (*types.Transaction, error) {
	c.txCalls++
	if err := c.txErr[txid]; err != nil {
		return nil, err
	}
	tx, ok := c.txs[txid]
	if !ok {
		return nil, errors.New("No such mempool or blockchain transaction")
	}
	return tx, nil
}
