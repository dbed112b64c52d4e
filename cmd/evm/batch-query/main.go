// Package main runs contract bytecode and transaction receipt batches once and exports the results.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/goodnatureofminers/evmquery/internal/evm/chain"
	"github.com/goodnatureofminers/evmquery/internal/evm/export"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
	"github.com/goodnatureofminers/evmquery/internal/evm/service/batch"
	"github.com/goodnatureofminers/evmquery/internal/metrics"
	"github.com/goodnatureofminers/evmquery/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var config struct {
	RPCURL           string `long:"rpc-url" env:"BATCH_QUERY_RPC_URL" description:"chain json-rpc endpoint" default:"https://json-rpc.testnet.swisstronik.com"`
	Chain            string `long:"chain" env:"BATCH_QUERY_CHAIN" description:"chain label for logs and metrics" default:"swisstronik-testnet"`
	Contracts        string `long:"contracts" env:"BATCH_QUERY_CONTRACTS" description:"contract addresses, comma separated or json array"`
	ContractsFile    string `long:"contracts-file" env:"BATCH_QUERY_CONTRACTS_FILE" description:"file with contract addresses, - for stdin"`
	Transactions     string `long:"transactions" env:"BATCH_QUERY_TRANSACTIONS" description:"transaction hashes, comma separated or json array"`
	TransactionsFile string `long:"transactions-file" env:"BATCH_QUERY_TRANSACTIONS_FILE" description:"file with transaction hashes, - for stdin"`
	OutDir           string `long:"out-dir" env:"BATCH_QUERY_OUT_DIR" description:"directory for contracts.json and transactions.json" default:"."`
}

type job struct {
	kind model.Kind
	raw  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	logger = logger.With(zap.String("chain", config.Chain))

	jobs, err := collectJobs(os.Stdin)
	if err != nil {
		logger.Fatal("Failed to read input", zap.Error(err))
	}
	if len(jobs) == 0 {
		logger.Fatal("Nothing to query: set --contracts/--contracts-file or --transactions/--transactions-file")
	}

	rpcClient, err := chain.Dial(ctx, config.RPCURL)
	if err != nil {
		logger.Fatal("Failed to dial chain endpoint", zap.Error(err))
	}
	defer rpcClient.Close()
	if chainID, err := chain.ChainID(ctx, rpcClient); err != nil {
		logger.Warn("Chain id probe failed", zap.String("rpc_url", config.RPCURL), zap.Error(err))
	} else {
		logger.Info("Connected to chain endpoint", zap.String("rpc_url", config.RPCURL), zap.String("chain_id", chainID.String()))
	}

	chainName := model.Chain(config.Chain)
	client := chain.NewRPCClient(rpcClient, metrics.NewRPCClient(chainName))
	engine := batch.NewEngine(metrics.NewBatchEngine(chainName), logger.Named("batchEngine"))

	if err := runJobs(ctx, engine, client, jobs, config.OutDir, logger); err != nil {
		logger.Fatal("Batch query failed", zap.Error(err))
	}
}

// runJobs runs every batch to completion and exports it. A failed export is
// reported once all batches are done and never stops a sibling batch.
func runJobs(ctx context.Context, engine *batch.Engine, client batch.Client, jobs []job, outDir string, logger *zap.Logger) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	// Each job is an independent batch; lookups inside a batch stay sequential.
	err := workerpool.Process(ctx, len(jobs), jobs, func(ctx context.Context, j job) error {
		rs := engine.Query(ctx, j.raw, j.kind, client)
		path, err := export.WriteFile(outDir, rs)
		if err != nil {
			logger.Error("Batch export failed", zap.String("kind", string(j.kind)), zap.Error(err))
			mu.Lock()
			errs = append(errs, fmt.Errorf("export %s: %w", j.kind, err))
			mu.Unlock()
			return nil
		}
		counts := rs.Counts()
		logger.Info("Batch exported",
			zap.String("kind", string(j.kind)),
			zap.String("path", path),
			zap.Int("records", len(rs.Records)),
			zap.Int("found", counts[model.StatusFound]),
			zap.Int("not_found", counts[model.StatusNotFound]),
			zap.Int("invalid", counts[model.StatusInvalid]),
			zap.Int("failed", counts[model.StatusFailed]),
		)
		return nil
	}, nil)
	if err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// collectJobs reads the raw input of every requested batch before any query starts.
func collectJobs(stdin io.Reader) ([]job, error) {
	sources := []struct {
		kind   model.Kind
		inline string
		file   string
	}{
		{kind: model.Bytecode, inline: config.Contracts, file: config.ContractsFile},
		{kind: model.Receipt, inline: config.Transactions, file: config.TransactionsFile},
	}

	stdinUsed := false
	jobs := make([]job, 0, len(sources))
	for _, src := range sources {
		switch {
		case src.file == "-":
			if stdinUsed {
				return nil, fmt.Errorf("stdin can feed only one batch")
			}
			stdinUsed = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read %s from stdin: %w", src.kind, err)
			}
			jobs = append(jobs, job{kind: src.kind, raw: string(data)})
		case src.file != "":
			data, err := os.ReadFile(src.file)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", src.file, err)
			}
			jobs = append(jobs, job{kind: src.kind, raw: string(data)})
		case src.inline != "":
			jobs = append(jobs, job{kind: src.kind, raw: src.inline})
		}
	}
	return jobs, nil
}
