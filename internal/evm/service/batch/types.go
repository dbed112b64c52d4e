package batch

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client performs the remote lookups. GetTransactionReceipt returns a nil receipt when the node has none.
	Client interface {
		GetCode(ctx context.Context, address string) (string, error)
		GetTransactionReceipt(ctx context.Context, hash string) (json.RawMessage, error)
	}
	Metrics interface {
		ObserveRecord(kind model.Kind, status model.Status)
		ObserveBatch(kind model.Kind, size int, started time.Time)
	}
)
