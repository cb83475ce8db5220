package types

// Transaction is the node's verbose `getrawtransaction` decode.
// BlockHash/Confirmations/Time/BlockTime are zero for unconfirmed
// transactions; Fee is present only when the node can derive it.
type Transaction struct {
	Hex           string  `json:"hex"`
	Txid          string  `json:"txid"`
	Hash          string  `json:"hash"`
	Size          int32   `json:"size"`
	Vsize         int32   `json:"vsize"`
	Weight        int32   `json:"weight"`
	Version       uint32  `json:"version"`
	LockTime      uint32  `json:"locktime"`
	Vin           []Vin   `json:"vin"`
	Vout          []Vout  `json:"vout"`
	Fee           float64 `json:"fee,omitempty"`
	BlockHash     string  `json:"blockhash,omitempty"`
	Confirmations uint64  `json:"confirmations,omitempty"`
	Time          int64   `json:"time,omitempty"`
	BlockTime     int64   `json:"blocktime,omitempty"`
}

// Vin references a prior output by txid+vout, or carries the coinbase
// script for a generation input.
type Vin struct {
	Coinbase  string     `json:"coinbase,omitempty"`
	Txid      string     `json:"txid,omitempty"`
	Vout      uint32     `json:"vout,omitempty"`
	ScriptSig *ScriptSig `json:"scriptSig,omitempty"`
	Sequence  uint32     `json:"sequence"`
	Witness   []string   `json:"txinwitness,omitempty"`
}

// IsCoinbase reports whether the input is a generation input.
func (v Vin) IsCoinbase() bool {
	return v.Coinbase != ""
}

type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}
