package rpcclient

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/block-explorer/common/errs"
	"github.com/gaze-network/block-explorer/pkg/logger"
	"github.com/gaze-network/block-explorer/pkg/logger/slogx"
	"github.com/go-resty/resty/v2"
)

// Error kinds classifying node call failures. Callers match with errors.Is.
var (
	// ErrTransport is returned when the node can't be reached or replies
	// with a non-2xx HTTP status.
	ErrTransport = errs.ErrorKind("rpc transport failure")

	// ErrNodeRejected is returned when the node replies with a JSON-RPC
	// error object.
	ErrNodeRejected = errs.ErrorKind("rpc request rejected by node")

	// ErrDecode is returned when the node reply is not valid JSON-RPC.
	ErrDecode = errs.ErrorKind("rpc malformed response")
)

const defaultRequestTimeout = 30 * time.Second

// Config is the JSON-RPC endpoint of the Bitcoin full node.
type Config struct {
	URL  string `mapstructure:"url"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

// Client is a JSON-RPC 2.0 client for a Bitcoin-Core-compatible node.
// It holds no request state and is safe for concurrent use.
type Client struct {
	http   *resty.Client
	nextId atomic.Uint64
}

func New(config Config) *Client {
	http := resty.New().
		SetBaseURL(config.URL).
		SetBasicAuth(config.User, config.Pass).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultRequestTimeout)
	return &Client{http: http}
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Id      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
}

// Call issues a JSON-RPC request with positional params and returns the raw
// result. Failures are classified as ErrTransport, ErrNodeRejected or
// ErrDecode; node error details stay in the wrapped error and are never
// surfaced to API clients.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	request := rpcRequest{
		Jsonrpc: "2.0",
		Id:      c.nextId.Add(1),
		Method:  method,
		Params:  params,
	}

	logger.DebugContext(ctx, "Calling bitcoin node", slogx.String("method", method))

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post("")
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "can't reach bitcoin node: %v", err)
	}
	if !resp.IsSuccess() {
		return nil, errors.Wrapf(ErrTransport, "bitcoin node returned status %d", resp.StatusCode())
	}

	var response rpcResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, errors.Wrapf(ErrDecode, "can't decode bitcoin node response: %v", err)
	}
	if response.Error != nil {
		return nil, errors.Wrapf(ErrNodeRejected, "method %q: code %d: %s", method, response.Error.Code, response.Error.Message)
	}
	if len(response.Result) == 0 || string(response.Result) == "null" {
		return nil, errors.Wrapf(ErrDecode, "method %q: response has no result", method)
	}

	return response.Result, nil
}
