package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
	"github.com/gaze-network/block-explorer/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransaction(t *testing.T) {
	const txid = "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"

	t.Run("returns transaction for known txid", func(t *testing.T) {
		chain := newFakeChain(105)
		chain.txs[txid] = &types.Transaction{
			Txid:          txid,
			Vin:           []types.Vin{{Coinbase: "04ffff001d0104", Sequence: 4294967295}},
			Vout:          []types.Vout{{Value: 50, N: 0}},
			Confirmations: 105,
		}
		u := New(chain)

		tx, err := u.GetTransaction(context.Background(), txid)
		require.NoError(t, err)
		assert.Equal(t, txid, tx.Txid)
		require.Len(t, tx.Vin, 1)
		assert.True(t, tx.Vin[0].IsCoinbase())
	})

	t.Run("normalizes txid case before querying the node", func(t *testing.T) {
		chain := newFakeChain(105)
		chain.txs[txid] = &types.Transaction{Txid: txid}
		u := New(chain)

		tx, err := u.GetTransaction(context.Background(), strings.ToUpper(txid))
		require.NoError(t, err)
		assert.Equal(t, txid, tx.Txid)
	})

	t.Run("rejects malformed txid without calling the node", func(t *testing.T) {
		chain := newFakeChain(105)
		u := New(chain)

		for _, raw := range []string{"", "abc", strings.Repeat("g", 64), txid[:63]} {
			_, err := u.GetTransaction(context.Background(), raw)
			assert.ErrorIs(t, err, errs.InvalidArgument, "input %q", raw)
		}
		assert.Zero(t, chain.txCalls)
	})

	t.Run("propagates node failure", func(t *testing.T) {
		chain := newFakeChain(105)
		nodeErr := errors.New("No such mempool or blockchain transaction")
		chain.txErr[txid] = nodeErr
		u := New(chain)

		_, err := u.GetTransaction(context.Background(), txid)
		assert.ErrorIs(t, err, nodeErr)
		assert.NotErrorIs(t, err, errs.InvalidArgument)
	})
}
