package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/bigamist7/Bigamist-TaskPal/api/handler"
	"github.com/bigamist7/Bigamist-TaskPal/internal/assistant"
	"github.com/bigamist7/Bigamist-TaskPal/internal/config"
	"github.com/bigamist7/Bigamist-TaskPal/internal/infrastructure/monitor"
	"github.com/bigamist7/Bigamist-TaskPal/internal/infrastructure/storage"
	"github.com/bigamist7/Bigamist-TaskPal/internal/middleware"
	"github.com/bigamist7/Bigamist-TaskPal/internal/router"
	"github.com/bigamist7/Bigamist-TaskPal/internal/services"
	"github.com/bigamist7/Bigamist-TaskPal/internal/services/lifecycle"
	"github.com/bigamist7/Bigamist-TaskPal/pkg/httpcontext"
	"github.com/bigamist7/Bigamist-TaskPal/pkg/logger"
	boltRepo "github.com/bigamist7/Bigamist-TaskPal/repository/bolt"
	chatUC "github.com/bigamist7/Bigamist-TaskPal/usecase/chat"
	taskUC "github.com/bigamist7/Bigamist-TaskPal/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		zapLogger.Fatal("failed to open storage", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return db.Close()
	})

	taskRepo, err := boltRepo.NewTaskRepository(db)
	if err != nil {
		zapLogger.Fatal("failed to init task repository", zap.Error(err))
	}
	chatRepo, err := boltRepo.NewChatRepository(db)
	if err != nil {
		zapLogger.Fatal("failed to init chat repository", zap.Error(err))
	}

	taskStore := taskUC.New(taskRepo, zapLogger)
	if err := taskStore.Load(appCtx); err != nil {
		zapLogger.Fatal("failed to load task collection", zap.Error(err))
	}

	chatStore := chatUC.New(chatRepo, cfg.Chat.Greeting, cfg.Chat.HistoryLimit, zapLogger)
	if err := chatStore.Load(appCtx); err != nil {
		// Chat history is a convenience; a fresh greeting is good enough.
		zapLogger.Warn("failed to load chat history", zap.Error(err))
	}

	mon := monitor.New(db, chatStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	var generator assistant.Generator
	if cfg.AI.APIKey != "" {
		gemini, err := assistant.NewGemini(appCtx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			zapLogger.Fatal("failed to init AI client", zap.Error(err))
		}
		generator = gemini
		zapLogger.Info("assistant strategy: gemini", zap.String("model", cfg.AI.Model))
	} else {
		generator = assistant.NewRuleEngine()
		zapLogger.Info("assistant strategy: rule engine (no API key configured)")
	}
	responder := assistant.NewService(generator, mon, cfg.AI.Timeout, zapLogger)

	if cfg.Chat.HistoryLimit > 0 {
		sweeper := services.NewRetentionSweeper(chatStore, zapLogger, services.SweeperConfig{
			Interval: cfg.Chat.SweepInterval,
		})
		sweeper.Start()
		manager.Register("retention_sweeper", func(ctx context.Context) error {
			sweeper.Stop(ctx)
			return nil
		})
	}

	apiAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)
	chatAdapter := httpcontext.NewAdapter(cfg.AI.Timeout + 5*time.Second)

	handlers := router.Handlers{
		Task:        apiHandler.NewTaskHandler(taskStore, apiAdapter, zapLogger),
		Chat:        apiHandler.NewChatHandler(chatStore, taskStore, responder, chatAdapter, zapLogger),
		Achievement: apiHandler.NewAchievementHandler(taskStore, apiAdapter, zapLogger),
		Health:      apiHandler.NewHealthHandler(mon, apiAdapter, zapLogger),
	}

	r := router.New(handlers, middleware.CORS)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
