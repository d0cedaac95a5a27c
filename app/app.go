package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/config"
	"github.com/perpusid/circulation-service/internal/handler"
	"github.com/perpusid/circulation-service/internal/repository"
	"github.com/perpusid/circulation-service/internal/server"
	"github.com/perpusid/circulation-service/internal/service"
	"github.com/perpusid/circulation-service/migrations"
	"github.com/perpusid/circulation-service/pkg/kafka"
	"github.com/perpusid/circulation-service/pkg/logger"
	"github.com/perpusid/circulation-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}

	var audit service.AuditPublisher
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %w", err)
		}
		audit = kafka.NewPublisher(producer)
	}

	svc := service.NewService(repo, audit, log)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
