package common

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
)

// ParseHash validates a block hash or transaction id and normalizes it to
// lowercase. The input must be exactly 64 hex characters; shorter strings
// are rejected instead of zero-padded.
func ParseHash(raw string) (string, error) {
	if len(raw) != chainhash.MaxHashStringSize {
		return "", errors.Wrapf(errs.InvalidArgument, "hash must be %d characters, got %d", chainhash.MaxHashStringSize, len(raw))
	}
	hash, err := chainhash.NewHashFromStr(raw)
	if err != nil {
		return "", errors.Wrapf(errs.InvalidArgument, "hash is not a hex string: %v", err)
	}
	return hash.String(), nil
}
