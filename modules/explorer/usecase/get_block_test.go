package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBlock(t *testing.T) {
	t.Run("returns block for known hash", func(t *testing.T) {
		chain := newFakeChain(105)
		u := New(chain)

		block, err := u.GetBlock(context.Background(), blockHashAt(100))
		require.NoError(t, err)
		assert.Equal(t, int64(100), block.Height)
		assert.Equal(t, blockHashAt(99), block.PreviousBlockHash)
	})

	t.Run("normalizes hash case before querying the node", func(t *testing.T) {
		chain := newFakeChain(5)
		chain.hashes[5] = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
		u := New(chain)

		block, err := u.GetBlock(context.Background(), strings.ToUpper(chain.hashes[5]))
		require.NoError(t, err)
		assert.Equal(t, chain.hashes[5], block.Hash)
	})

	t.Run("rejects malformed hash without calling the node", func(t *testing.T) {
		chain := newFakeChain(105)
		u := New(chain)

		for _, raw := range []string{"", "xyz", strings.Repeat("z", 64), blockHashAt(100) + "00"} {
			_, err := u.GetBlock(context.Background(), raw)
			assert.ErrorIs(t, err, errs.InvalidArgument, "input %q", raw)
		}
		assert.Zero(t, chain.blockCalls)
	})

	t.Run("propagates node failure", func(t *testing.T) {
		chain := newFakeChain(105)
		hash := blockHashAt(100)
		nodeErr := errors.New("Block not found")
		chain.blockErr[hash] = nodeErr
		u := New(chain)

		_, err := u.GetBlock(context.Background(), hash)
		assert.ErrorIs(t, err, nodeErr)
		assert.NotErrorIs(t, err, errs.InvalidArgument)
	})
}
