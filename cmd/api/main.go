package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pekka-mall/sso-service/internal/config"
	"github.com/pekka-mall/sso-service/internal/logging"
	"github.com/pekka-mall/sso-service/internal/repository/postgres"
	"github.com/pekka-mall/sso-service/internal/repository/redis"
	"github.com/pekka-mall/sso-service/internal/service"
	transport "github.com/pekka-mall/sso-service/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.Migrate(migrateCtx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	redisClient, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepo(db)
	sessionStore := redis.NewSessionStore(redisClient, cfg.SessionNamespace)
	ssoService := service.NewSSOService(userRepo, sessionStore, service.Config{
		SessionTTL: cfg.SessionTTL,
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterSSO(e, ssoService)
	transport.RegisterSwagger(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			e.Logger.Info("shutting down the server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
