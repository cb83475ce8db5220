package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common"
	"github.com/gaze-network/block-explorer/core/types"
)

// GetTransaction resolves a raw txid to the node's verbose transaction
// decode. Txids share the validation rule of block hashes; an id that can't
// be a txid never reaches the node.
func (u *Usecase) GetTransaction(ctx context.Context, rawTxId string) (*types.Transaction, error) {
	txid, err := common.ParseHash(rawTxId)
	if err != nil {
		return nil, errors.Wrap(err, "invalid transaction id")
	}

	tx, err := u.bitcoinRPC.GetRawTransactionVerbose(ctx, txid)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetRawTransactionVerbose")
	}

	return tx, nil
}
