// Package chain talks to an EVM JSON-RPC endpoint.
package chain

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	json "github.com/goccy/go-json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// RPCCaller is the subset of *rpc.Client used by RPCClient.
	RPCCaller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
)

// RPCClient wraps a go-ethereum rpc client with metrics instrumentation.
type RPCClient struct {
	client     RPCCaller
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client RPCCaller, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to the JSON-RPC endpoint at url.
func Dial(ctx context.Context, url string) (*rpc.Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return c, nil
}

// ChainID asks the endpoint which chain it serves.
func ChainID(ctx context.Context, c *rpc.Client) (*big.Int, error) {
	return ethclient.NewClient(c).ChainID(ctx)
}

// GetCode returns the code stored at address on the latest block exactly as the node reports it,
// "0x" when there is none. The address is forwarded as is; the node rejects malformed values.
func (r *RPCClient) GetCode(ctx context.Context, address string) (code string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_code", err, started)
	}()

	var res string
	if err = r.client.CallContext(ctx, &res, "eth_getCode", address, "latest"); err != nil {
		return "", err
	}
	return res, nil
}

// GetTransactionReceipt returns the raw receipt of a transaction, nil when the node has none.
func (r *RPCClient) GetTransactionReceipt(ctx context.Context, hash string) (receipt json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction_receipt", err, started)
	}()

	var res json.RawMessage
	if err = r.client.CallContext(ctx, &res, "eth_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	res = bytes.TrimSpace(res)
	if len(res) == 0 || bytes.Equal(res, []byte("null")) {
		return nil, nil
	}
	return res, nil
}
