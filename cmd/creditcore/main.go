package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creditcore/internal/auth"
	"creditcore/internal/config"
	"creditcore/internal/datamgmt"
	"creditcore/internal/db"
	"creditcore/internal/decisions"
	"creditcore/internal/httpserver"
	"creditcore/internal/logging"
)

func main() {
	ctx := context.Background()
	logger := logging.New()

	cfg := config.Load()

	dbConn, err := db.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn, "sql"); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userStore := auth.NewPostgresStore(dbConn)
	authSvc := auth.NewService(userStore, cfg.JWTSecret, cfg.AdminEmail, logger)
	if err := authSvc.SeedFromFile(ctx, cfg.UsersPath); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	decisionSvc := decisions.NewService(decisions.NewPostgresStore(dbConn))
	dataSvc := datamgmt.NewService(datamgmt.NewPostgresStore(dbConn))

	handler := httpserver.NewRouter(logger, authSvc, userStore, decisionSvc, dataSvc, cfg.APIKey, cfg.CORSOrigin)
	server := httpserver.New(cfg.HTTPAddr, handler, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
