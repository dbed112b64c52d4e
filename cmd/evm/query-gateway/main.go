// Package main runs the HTTP gateway for batch bytecode and receipt queries.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/evmquery/internal/evm/chain"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
	"github.com/goodnatureofminers/evmquery/internal/evm/service/batch"
	"github.com/goodnatureofminers/evmquery/internal/metrics"
	"github.com/goodnatureofminers/evmquery/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr     string `long:"addr" env:"QUERY_GATEWAY_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"QUERY_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	RPCURL   string `long:"rpc-url" env:"QUERY_GATEWAY_RPC_URL" description:"chain json-rpc endpoint" default:"https://json-rpc.testnet.swisstronik.com"`
	Chain    string `long:"chain" env:"QUERY_GATEWAY_CHAIN" description:"chain label for logs and metrics" default:"swisstronik-testnet"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	chainName := model.Chain(config.Chain)
	logger = logger.With(zap.String("chain", config.Chain))

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

	client := chain.NewRPCClient(rpcClient, metrics.NewRPCClient(chainName))
	engine := batch.NewEngine(metrics.NewBatchEngine(chainName), logger.Named("batchEngine"))

	chainInterceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chainInterceptors...)),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	)
	if err := transport.NewQueryHandler(engine, client, logger.Named("queryHandler")).Register(gw); err != nil {
		logger.Fatal("Register query handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	// Batches are sequential, so large ones need a generous write timeout.
	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
