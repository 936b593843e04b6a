package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpctx "github.com/Agent-cat/Expence-Tracker/internal/api/http/context"
	"github.com/Agent-cat/Expence-Tracker/internal/api/http/handler"
	"github.com/Agent-cat/Expence-Tracker/internal/api/http/middleware"
	"github.com/Agent-cat/Expence-Tracker/internal/api/http/router"
	httpServer "github.com/Agent-cat/Expence-Tracker/internal/api/http/server"
	"github.com/Agent-cat/Expence-Tracker/internal/config"
	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
	"github.com/Agent-cat/Expence-Tracker/internal/repository/postgres"
	"github.com/Agent-cat/Expence-Tracker/internal/server"
	"github.com/Agent-cat/Expence-Tracker/internal/service"
	"github.com/Agent-cat/Expence-Tracker/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, tokenManager, logger)
	expenseService := service.NewExpense(expenseRepo, userRepo, logger)

	authHandler := handler.NewAuth(authService, ctxMgr, logger)
	expenseHandler := handler.NewExpense(expenseService, ctxMgr, logger)
	authenticate := middleware.NewAuthenticate(tokenManager, ctxMgr, logger)
	logging := middleware.NewLogging(logger)

	app := router.New(authHandler, expenseHandler, authenticate, logging, cfg.HTTP.AllowOrigins)
	srv := httpServer.New(app, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
