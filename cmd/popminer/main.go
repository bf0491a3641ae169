package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/altchain/bitcoin"
	"github.com/goodnatureofminers/popminer/internal/metrics"
	"github.com/goodnatureofminers/popminer/internal/pop/journal"
	"github.com/goodnatureofminers/popminer/internal/pop/monitor"
	"github.com/goodnatureofminers/popminer/internal/pop/registry"
	"github.com/goodnatureofminers/popminer/internal/pop/repository/clickhouse"
	"github.com/goodnatureofminers/popminer/internal/pop/service"
	"github.com/goodnatureofminers/popminer/internal/pop/task"
	"github.com/goodnatureofminers/popminer/internal/transport"
	"github.com/goodnatureofminers/popminer/internal/veriblock/network"
	"github.com/goodnatureofminers/popminer/pkg/batcher"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"POPMINER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`

	NATSURL             string        `long:"nats-url" env:"POPMINER_NATS_URL" description:"NATS URL of the VeriBlock gateway" default:"nats://127.0.0.1:4222"`
	NATSSubjectPrefix   string        `long:"nats-subject-prefix" env:"POPMINER_NATS_SUBJECT_PREFIX" description:"subject prefix of the VeriBlock gateway" default:"veriblock"`
	NATSRequestTimeout  time.Duration `long:"nats-request-timeout" env:"POPMINER_NATS_REQUEST_TIMEOUT" description:"timeout of gateway requests" default:"30s"`
	PublicationsTimeout time.Duration `long:"publications-timeout" env:"POPMINER_PUBLICATIONS_TIMEOUT" description:"timeout of the keystone publications request" default:"30m"`

	ChainKey            string        `long:"chain-key" env:"POPMINER_CHAIN_KEY" description:"altchain key" default:"btcsq"`
	ChainName           string        `long:"chain-name" env:"POPMINER_CHAIN_NAME" description:"altchain display name"`
	ChainIdentifier     int64         `long:"chain-id" env:"POPMINER_CHAIN_ID" description:"altchain identifier in publication data"`
	RPCURL              string        `long:"rpc-url" env:"POPMINER_RPC_URL" description:"altchain RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser             string        `long:"rpc-user" env:"POPMINER_RPC_USER" description:"altchain RPC username"`
	RPCPassword         string        `long:"rpc-password" env:"POPMINER_RPC_PASSWORD" description:"altchain RPC password"`
	Network             string        `long:"network" env:"POPMINER_NETWORK" description:"altchain network" default:"mainnet" choice:"mainnet" choice:"testnet3" choice:"regtest" choice:"signet"`
	PayoutAddress       string        `long:"payout-address" env:"POPMINER_PAYOUT_ADDRESS" description:"altchain address receiving the PoP payout" required:"true"`
	NeededConfirmations int64         `long:"needed-confirmations" env:"POPMINER_NEEDED_CONFIRMATIONS" description:"confirmations of the endorsed block" default:"10"`
	PayoutInterval      uint64        `long:"payout-interval" env:"POPMINER_PAYOUT_INTERVAL" description:"blocks between endorsement and payout" default:"100"`
	PollInterval        time.Duration `long:"poll-interval" env:"POPMINER_POLL_INTERVAL" description:"altchain polling interval" default:"10s"`

	FeePerByte int64 `long:"fee-per-byte" env:"POPMINER_FEE_PER_BYTE" description:"endorsement fee per byte in atomic units" default:"1000"`
	MaxFee     int64 `long:"max-fee" env:"POPMINER_MAX_FEE" description:"maximum endorsement fee in atomic units" default:"10000000"`

	Resume      bool   `long:"resume" env:"POPMINER_RESUME" description:"resume unfinished operations on start"`
	Mine        bool   `long:"mine" env:"POPMINER_MINE" description:"start one operation on start"`
	MineHeight  uint64 `long:"mine-height" env:"POPMINER_MINE_HEIGHT" description:"height endorsed by --mine, 0 for the chain tip"`
	MetricsAddr string `long:"metrics-addr" env:"POPMINER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	HTTPAddr    string `long:"http-addr" env:"POPMINER_HTTP_ADDR" description:"address of the status API" default:":8001"`
	GRPCAddr    string `long:"grpc-addr" env:"POPMINER_GRPC_ADDR" description:"address of the gRPC health server" default:":8000"`

	JournalFlushSize     int           `long:"journal-flush-size" env:"POPMINER_JOURNAL_FLUSH_SIZE" description:"operation events per insert" default:"500"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"POPMINER_JOURNAL_FLUSH_INTERVAL" description:"max delay of operation events" default:"2s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("pop miner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	store, err := service.NewOperationStore(repo)
	if err != nil {
		return err
	}

	events, err := journal.New(repo, logger, batcher.Config{
		FlushSize:     cfg.JournalFlushSize,
		FlushInterval: cfg.JournalFlushInterval,
	})
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}
	events.Start(ctx)
	defer events.Stop()

	nc, err := network.Connect(cfg.NATSURL, logger)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()
	vbk, err := network.NewClient(network.FromNATS(nc), network.Config{
		SubjectPrefix:       cfg.NATSSubjectPrefix,
		RequestTimeout:      cfg.NATSRequestTimeout,
		PublicationsTimeout: cfg.PublicationsTimeout,
	}, metrics.NewNATSClient(), logger)
	if err != nil {
		return fmt.Errorf("init veriblock client: %w", err)
	}
	defer vbk.Close()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init altchain rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	params, err := chainParams(cfg.Network)
	if err != nil {
		return err
	}
	chain, err := bitcoin.NewChain(bitcoin.Config{
		Key:                 cfg.ChainKey,
		Name:                cfg.ChainName,
		Identifier:          cfg.ChainIdentifier,
		PayoutAddress:       cfg.PayoutAddress,
		Params:              params,
		NeededConfirmations: cfg.NeededConfirmations,
		PayoutInterval:      cfg.PayoutInterval,
	}, bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.ChainKey)), logger)
	if err != nil {
		return fmt.Errorf("init altchain: %w", err)
	}

	pipelineMetrics := metrics.NewPipeline()
	executor, err := task.NewExecutor(store, pipelineMetrics, events, logger)
	if err != nil {
		return err
	}
	waiter := monitor.NewWaiter(cfg.PollInterval, 0, logger.Named("monitor"))
	pipeline, err := service.NewPipeline(service.PipelineDeps{
		Chain:    chain,
		Monitor:  monitor.NewMonitor(chain, waiter, logger.Named("monitor")),
		Network:  vbk,
		Fees:     service.StaticFees{PerByte: cfg.FeePerByte, Max: cfg.MaxFee},
		Executor: executor,
		Store:    store,
		Metrics:  pipelineMetrics,
		Journal:  events,
	}, logger)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	pipelines := registry.New[service.PipelineRunner]()
	if err := pipelines.Register(chain.Key(), pipeline); err != nil {
		return err
	}
	miner, err := service.NewMinerService(pipelines, store, logger)
	if err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(ctx)
	miner.Start(runCtx)
	defer miner.Wait()
	defer cancel()

	if cfg.Resume {
		if _, err := miner.Resume(ctx); err != nil {
			logger.Error("resume operations", zap.Error(err))
		}
	}
	if cfg.Mine {
		if _, err := miner.Mine(ctx, chain.Key(), cfg.MineHeight); err != nil {
			return fmt.Errorf("start operation: %w", err)
		}
	}

	health := transport.NewHealth()
	if err := startGRPCServer(ctx, cfg.GRPCAddr, health, logger); err != nil {
		return err
	}
	handler, err := transport.NewHTTPHandler(miner, repo, logger)
	if err != nil {
		return err
	}
	health.SetServing(true)
	defer health.Shutdown()

	return serveHTTP(ctx, cfg.HTTPAddr, handler, logger)
}
