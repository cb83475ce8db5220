package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLatestBlocks(t *testing.T) {
	t.Run("returns ten blocks most recent first", func(t *testing.T) {
		chain := newFakeChain(105)
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		require.NoError(t, err)
		require.Len(t, blocks, 10)
		for i, block := range blocks {
			assert.Equal(t, int64(105-i), block.Height)
			assert.Equal(t, blockHashAt(105-int64(i)), block.Hash)
		}
	})

	t.Run("returns the whole chain near genesis", func(t *testing.T) {
		chain := newFakeChain(3)
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		require.NoError(t, err)
		require.Len(t, blocks, 4)
		assert.Equal(t, int64(3), blocks[0].Height)
		assert.Equal(t, int64(0), blocks[3].Height)
	})

	t.Run("returns only genesis when the chain has one block", func(t *testing.T) {
		chain := newFakeChain(0)
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, int64(0), blocks[0].Height)
		assert.Empty(t, blocks[0].PreviousBlockHash)
	})

	t.Run("reads the tip height exactly once", func(t *testing.T) {
		chain := newFakeChain(105)
		u := New(chain)

		_, err := u.GetLatestBlocks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, chain.countCalls)
	})

	t.Run("fails when tip height is unavailable", func(t *testing.T) {
		chain := newFakeChain(105)
		chain.countErr = errors.New("connection refused")
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		assert.Error(t, err)
		assert.Nil(t, blocks)
	})

	t.Run("fails whole walk on hash lookup error", func(t *testing.T) {
		chain := newFakeChain(105)
		chain.hashErr[101] = errors.New("connection reset")
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		assert.ErrorContains(t, err, "height 101")
		assert.Nil(t, blocks, "partial results must not leak out")
	})

	t.Run("fails whole walk on block fetch error", func(t *testing.T) {
		chain := newFakeChain(105)
		chain.blockErr[blockHashAt(99)] = errors.New("connection reset")
		u := New(chain)

		blocks, err := u.GetLatestBlocks(context.Background())
		assert.Error(t, err)
		assert.Nil(t, blocks, "partial results must not leak out")
	})
}
