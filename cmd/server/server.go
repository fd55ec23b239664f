package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcspirits/spirits-api/internal/config"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	apiv1 "github.com/arcspirits/spirits-api/internal/handlers/api/v1"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
	"github.com/arcspirits/spirits-api/internal/orchestrators/export"
	"github.com/arcspirits/spirits-api/internal/orchestrators/simulation"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	"github.com/arcspirits/spirits-api/internal/pkg/idgen"
	redisclient "github.com/arcspirits/spirits-api/internal/redis"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
	simrun "github.com/arcspirits/spirits-api/internal/repositories/sim_run"
)

var (
	serverConfigPath string
	serverAddr       string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Start the spirits API server with the catalog, simulation, and export services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&serverConfigPath, "config", "", "path to config file (defaults apply when empty)")
	serverCmd.Flags().StringVar(&serverAddr, "addr", "", "listen address, overrides the config file")
}

func runServer(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(serverConfigPath)
	if err != nil {
		return err
	}
	if serverAddr != "" {
		cfg.Server.Addr = serverAddr
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() { _ = client.Close() }()

	clk := clock.New()

	monsterRepo, err := monsterrepo.NewRedis(&monsterrepo.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}
	cardRepo, err := cardrepo.NewRedis(&cardrepo.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}
	simRunRepo, err := simrun.NewRedis(&simrun.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}

	// The rarity table is swapped atomically on file reloads, so bundle
	// builds never see a half-written table.
	var rarityTable atomic.Pointer[[]spirits.RarityConfig]
	rarityTable.Store(&cfg.Rarities)

	var watcher *config.RarityWatcher
	if cfg.RarityFile != "" {
		table, loadErr := config.LoadRarityFile(cfg.RarityFile)
		if loadErr != nil {
			return loadErr
		}
		rarityTable.Store(&table)

		watcher, err = config.NewRarityWatcher(cfg.RarityFile, logger, func(reloaded []spirits.RarityConfig) {
			rarityTable.Store(&reloaded)
			logger.Info("rarity table reloaded", zap.Int("entries", len(reloaded)))
		})
		if err != nil {
			return errors.Wrap(err, "failed to watch rarity file")
		}
		watcher.Start()
		defer watcher.Stop()
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		MonsterRepo: monsterRepo,
		CardRepo:    cardRepo,
		IDGenerator: idgen.NewUUID("mon"),
	})
	if err != nil {
		return err
	}

	simulationService, err := simulation.NewOrchestrator(&simulation.Config{
		SimRunRepo:    simRunRepo,
		MonsterRepo:   monsterRepo,
		IDGenerator:   idgen.NewUUID("sim"),
		MaxIterations: cfg.Simulation.MaxIterations,
		ResultTTL:     cfg.Simulation.ResultTTL,
	})
	if err != nil {
		return err
	}

	exportService, err := export.NewOrchestrator(&export.Config{
		MonsterRepo:  monsterRepo,
		CardRepo:     cardRepo,
		Clock:        clk,
		RaritySource: func() []spirits.RarityConfig { return *rarityTable.Load() },
	})
	if err != nil {
		return err
	}

	handler, err := apiv1.NewHandler(&apiv1.HandlerConfig{
		CatalogService:    catalogService,
		SimulationService: simulationService,
		ExportService:     exportService,
		HealthCheck: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- errors.Wrap(serveErr, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("graceful shutdown failed, closing", zap.Error(shutdownErr))
			_ = srv.Close()
		}
		logger.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
