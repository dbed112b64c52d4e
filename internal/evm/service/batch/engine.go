// Package batch runs one lookup per identifier and collects an order preserving result set.
package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/evmquery/internal/evm/input"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
	"go.uber.org/zap"
)

var errUnsupportedKind = errors.New("unsupported query kind")

// Engine queries identifiers one after another. It holds no per-batch state and is safe for concurrent use.
type Engine struct {
	logger  *zap.Logger
	metrics Metrics
}

// NewEngine builds an Engine. A nil metrics disables instrumentation.
func NewEngine(metrics Metrics, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:  logger,
		metrics: metrics,
	}
}

// Query normalizes raw operator input and runs it as one batch.
func (e *Engine) Query(ctx context.Context, raw string, kind model.Kind, client Client) model.ResultSet {
	return e.Run(ctx, input.Normalize(raw), kind, client)
}

// Run issues exactly one remote call per non-empty identifier, in order, and returns one record per identifier.
// Errors never stop the batch; a canceled ctx only makes the remaining calls fail.
func (e *Engine) Run(ctx context.Context, identifiers []string, kind model.Kind, client Client) model.ResultSet {
	started := time.Now()
	logger := e.logger.With(
		zap.String("kind", string(kind)),
		zap.String("operation", kind.Operation()),
		zap.Int("size", len(identifiers)),
	)
	logger.Debug("batch started")

	rs := model.ResultSet{
		Kind:    kind,
		Records: make([]model.Record, 0, len(identifiers)),
	}
	for i, id := range identifiers {
		record := e.queryOne(ctx, kind, client, i, strings.TrimSpace(id))
		if record.Status == model.StatusFailed {
			logger.Warn("lookup failed",
				zap.Int("position", i),
				zap.String("identifier", record.Identifier),
				zap.String("error", record.Message),
			)
		}
		e.observeRecord(kind, record.Status)
		rs.Records = append(rs.Records, record)
	}

	if e.metrics != nil {
		e.metrics.ObserveBatch(kind, len(identifiers), started)
	}
	counts := rs.Counts()
	logger.Info("batch finished",
		zap.Int("found", counts[model.StatusFound]),
		zap.Int("not_found", counts[model.StatusNotFound]),
		zap.Int("invalid", counts[model.StatusInvalid]),
		zap.Int("failed", counts[model.StatusFailed]),
		zap.Duration("elapsed", time.Since(started)),
	)
	return rs
}

func (e *Engine) queryOne(ctx context.Context, kind model.Kind, client Client, position int, id string) model.Record {
	if id == "" {
		return model.InvalidRecord(kind, position, id)
	}

	switch kind {
	case model.Bytecode:
		code, err := client.GetCode(ctx, id)
		if err != nil {
			return model.FailedRecord(position, id, err)
		}
		if code == model.NoCode {
			return model.NotFoundRecord(kind, position, id)
		}
		return model.FoundBytecode(position, id, code)
	case model.Receipt:
		receipt, err := client.GetTransactionReceipt(ctx, id)
		if err != nil {
			return model.FailedRecord(position, id, err)
		}
		if receipt == nil {
			return model.NotFoundRecord(kind, position, id)
		}
		return model.FoundReceipt(position, id, receipt)
	default:
		return model.FailedRecord(position, id, fmt.Errorf("%w %q", errUnsupportedKind, kind))
	}
}

func (e *Engine) observeRecord(kind model.Kind, status model.Status) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveRecord(kind, status)
}
