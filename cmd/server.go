package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transether/internal/config"
	"transether/internal/core"
	"transether/internal/db"
	"transether/internal/ethereum"
	"transether/internal/http/handler"
	"transether/internal/http/handler/middleware"
	"transether/internal/http/payload"
	"transether/internal/http/server"
	"transether/internal/metrics"
	"transether/internal/txlog"
	"transether/internal/wallet"
	"transether/pkg/log"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const initTimeout = 15 * time.Second

type store interface {
	txlog.Store
	Close() error
}

func Start() error {
	logger := log.NewZapLogger("transether", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	kv, err := openStore(logger, config)
	if err != nil {
		logger.Errorw("failed to open transaction log store", "error", err, "backend", config.TxLogBackend)
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Errorw("failed to close transaction log store", "error", err)
		}
	}()

	txLog := txlog.Load(logger, kv)

	artifact, err := ethereum.LoadArtifact(config.ArtifactPath)
	if err != nil {
		logger.Errorw("failed to load contract artifact", "error", err, "path", config.ArtifactPath)
		return err
	}

	rpcClient, err := rpc.DialContext(context.Background(), config.NodeURL)
	if err != nil {
		logger.Errorw("provider connection failed", "error", err)
		return err
	}
	defer rpcClient.Close()

	ethClient := ethclient.NewClient(rpcClient)
	provider := ethereum.NewRPCProvider(logger, rpcClient)

	bindContract := func(address common.Address, contractABI abi.ABI) wallet.Contract {
		return ethereum.NewWalletContract(logger, address, contractABI, ethClient, rpcClient)
	}

	// session
	manager := wallet.NewManager(logger, provider, artifact, bindContract)
	defer manager.Close()

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	err = manager.Initialize(ctx)
	cancel()
	if err != nil {
		// the API still serves the log and the session state
		logger.Warnw("wallet session not initialized", "error", err)
	}

	// metrics
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	transferer := core.NewTransferer(logger, manager, txLog, m)

	// handler
	transferHlr := handler.NewTransferHandler(
		logger,
		payload.DecodeValidator{},
		transferer,
		manager)

	// register routes
	mux := http.NewServeMux()
	route(mux, m, handler.Connect, transferHlr.HandleConnect)
	route(mux, m, handler.GetSession, transferHlr.HandleGetSession)
	route(mux, m, handler.SendEther, transferHlr.HandleSendEther)
	route(mux, m, handler.GetTransactions, transferHlr.HandleGetTransactions)
	route(mux, m, handler.GetOwner, transferHlr.HandleGetOwner)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func openStore(logger *zap.SugaredLogger, app config.App) (store, error) {
	switch app.TxLogBackend {
	case config.BackendPostgres:
		gormDB, err := db.NewPostgresDB(app.DBConnectionURL)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := gormDB.MigrateModels(&db.Entry{}); err != nil {
			return nil, errors.Join(err, gormDB.Close())
		}
		return gormDB, nil
	default:
		return db.NewBadgerDB(logger, app.TxLogPath)
	}
}

func route(mux *http.ServeMux, m *metrics.Metrics, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, metrics.HTTPMetricsMiddleware(m, pattern)(h))
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
