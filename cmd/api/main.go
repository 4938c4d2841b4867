package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrysvd/test-task/internal/adapters/cloud/yadisk"
	"github.com/dmitrysvd/test-task/internal/adapters/eventbroker/nats"
	chirouter "github.com/dmitrysvd/test-task/internal/adapters/handlers/http/chi"
	filehandler "github.com/dmitrysvd/test-task/internal/adapters/handlers/http/chi/v1/file"
	"github.com/dmitrysvd/test-task/internal/adapters/repository/postgres"
	"github.com/dmitrysvd/test-task/internal/adapters/storage/disk"
	"github.com/dmitrysvd/test-task/internal/config"
	"github.com/dmitrysvd/test-task/internal/core/port"
	"github.com/dmitrysvd/test-task/internal/core/service/file"
	"github.com/dmitrysvd/test-task/internal/core/service/replicate"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	blobStore, err := disk.NewAdapter(cfg.Storage.FilesDir, logger)
	if err != nil {
		logger.Error("failed to init blob store", "error", err)
		os.Exit(1)
	}

	//cloud provider
	cloudClient := yadisk.NewClient(cfg.Cloud, logger)

	//optional replication event publisher
	var events port.EventPublisher
	if cfg.NATS.URL != "" {
		publisher, err := nats.NewPublisher(cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		events = publisher
		logger.Info("NATS publisher initialized", "subject", cfg.NATS.Subject)
	}

	//repositories
	fileRepo := postgres.NewSqlFileRepository(db)

	//services
	replicator := replicate.NewService(fileRepo, blobStore, cloudClient, events, logger)
	replicationQueue := replicate.NewWorker(replicator, cfg.Replication, logger)
	replicationQueue.Start()

	fileService := file.NewFileService(fileRepo, blobStore, replicationQueue, logger)

	//http
	fileHandler := filehandler.NewFileHandlerV1(fileService, logger)

	router := chirouter.NewRouter(logger, fileHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	//no new uploads can arrive now; drain in-flight replications
	replicationQueue.Stop()
	logger.Info("replication queue drained")

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
