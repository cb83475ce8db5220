package httphandler

import (
	"github.com/gaze-network/block-explorer/core/types"
	"github.com/samber/lo"
)

// Response shapes mirror the node's verbose decode field for field; values
// are never reinterpreted on the way out.

type block struct {
	Hash              string   `json:"hash"`
	Confirmations     int64    `json:"confirmations"`
	StrippedSize      int32    `json:"strippedsize"`
	Size              int32    `json:"size"`
	Weight            int32    `json:"weight"`
	Height            int64    `json:"height"`
	Version           int32    `json:"version"`
	VersionHex        string   `json:"versionHex"`
	MerkleRoot        string   `json:"merkleroot"`
	Tx                []string `json:"tx"`
	Time              int64    `json:"time"`
	MedianTime        int64    `json:"mediantime,omitempty"`
	Nonce             uint32   `json:"nonce"`
	Bits              string   `json:"bits"`
	Difficulty        float64  `json:"difficulty"`
	ChainWork         string   `json:"chainwork,omitempty"`
	NTx               int32    `json:"nTx"`
	PreviousBlockHash string   `json:"previousblockhash,omitempty"`
	NextBlockHash     string   `json:"nextblockhash,omitempty"`
}

type transaction struct {
	Hex           string     `json:"hex"`
	Txid          string     `json:"txid"`
	Hash          string     `json:"hash"`
	Size          int32      `json:"size"`
	Vsize         int32      `json:"vsize"`
	Weight        int32      `json:"weight"`
	Version       uint32     `json:"version"`
	LockTime      uint32     `json:"locktime"`
	Inputs        []txInput  `json:"vin"`
	Outputs       []txOutput `json:"vout"`
	Fee           float64    `json:"fee,omitempty"`
	BlockHash     string     `json:"blockhash,omitempty"`
	Confirmations uint64     `json:"confirmations,omitempty"`
	Time          int64      `json:"time,omitempty"`
	BlockTime     int64      `json:"blocktime,omitempty"`
}

type txInput struct {
	Coinbase  string     `json:"coinbase,omitempty"`
	Txid      string     `json:"txid,omitempty"`
	Vout      uint32     `json:"vout,omitempty"`
	ScriptSig *scriptSig `json:"scriptSig,omitempty"`
	Sequence  uint32     `json:"sequence"`
	Witness   []string   `json:"txinwitness,omitempty"`
}

type txOutput struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey scriptPubKey `json:"scriptPubKey"`
}

type scriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

type scriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

func newBlockResponse(b *types.Block) block {
	return block{
		Hash:              b.Hash,
		Confirmations:     b.Confirmations,
		StrippedSize:      b.StrippedSize,
		Size:              b.Size,
		Weight:            b.Weight,
		Height:            b.Height,
		Version:           b.Version,
		VersionHex:        b.VersionHex,
		MerkleRoot:        b.MerkleRoot,
		Tx:                b.Tx,
		Time:              b.Time,
		MedianTime:        b.MedianTime,
		Nonce:             b.Nonce,
		Bits:              b.Bits,
		Difficulty:        b.Difficulty,
		ChainWork:         b.ChainWork,
		NTx:               b.NTx,
		PreviousBlockHash: b.PreviousBlockHash,
		NextBlockHash:     b.NextBlockHash,
	}
}

func newTransactionResponse(tx *types.Transaction) transaction {
	return transaction{
		Hex:      tx.Hex,
		Txid:     tx.Txid,
		Hash:     tx.Hash,
		Size:     tx.Size,
		Vsize:    tx.Vsize,
		Weight:   tx.Weight,
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs: lo.Map(tx.Vin, func(in types.Vin, _ int) txInput {
			var sig *scriptSig
			if in.ScriptSig != nil {
				sig = &scriptSig{Asm: in.ScriptSig.Asm, Hex: in.ScriptSig.Hex}
			}
			return txInput{
				Coinbase:  in.Coinbase,
				Txid:      in.Txid,
				Vout:      in.Vout,
				ScriptSig: sig,
				Sequence:  in.Sequence,
				Witness:   in.Witness,
			}
		}),
		Outputs: lo.Map(tx.Vout, func(out types.Vout, _ int) txOutput {
			return txOutput{
				Value: out.Value,
				N:     out.N,
				ScriptPubKey: scriptPubKey{
					Asm:       out.ScriptPubKey.Asm,
					Hex:       out.ScriptPubKey.Hex,
					ReqSigs:   out.ScriptPubKey.ReqSigs,
					Type:      out.ScriptPubKey.Type,
					Address:   out.ScriptPubKey.Address,
					Addresses: out.ScriptPubKey.Addresses,
				},
			}
		}),
		Fee:           tx.Fee,
		BlockHash:     tx.BlockHash,
		Confirmations: tx.Confirmations,
		Time:          tx.Time,
		BlockTime:     tx.BlockTime,
	}
}
