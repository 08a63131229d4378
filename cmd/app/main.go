package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telegram-cocktail-bot/internal/application"
	"telegram-cocktail-bot/internal/config"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	aiAdapters "telegram-cocktail-bot/internal/infra/adapters/ai"
	"telegram-cocktail-bot/internal/infra/adapters/cocktaildb"
	tele "telegram-cocktail-bot/internal/infra/adapters/telegram"
	pg "telegram-cocktail-bot/internal/infra/db/postgres"
	"telegram-cocktail-bot/internal/infra/i18n"
	"telegram-cocktail-bot/internal/infra/logging"
	"telegram-cocktail-bot/internal/infra/metrics"
	red "telegram-cocktail-bot/internal/infra/redis"
	"telegram-cocktail-bot/internal/infra/web"
	"telegram-cocktail-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, insecure cookies)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("dev mode enabled")
	}

	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()

	analyticsRepo := pg.NewPostgresAnalyticsRepo(pool)
	if err := analyticsRepo.InitSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("postgres schema init failed")
	}

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redisClient.Close()
	recipeCache := red.NewRecipeCache(redisClient, cfg.CocktailDB.CacheTTL)

	// ---- i18n ----
	translator, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	if err != nil {
		logger.Fatal().Err(err).Msg("translator init failed")
	}

	// ---- Adapters ----
	apiClient := cocktaildb.NewClient(&cfg.CocktailDB, logger)

	var toaster adapter.ToastAdapter
	if cfg.AI.OpenAIKey != "" {
		toaster, err = aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.Model)
		if err != nil {
			logger.Fatal().Err(err).Msg("openai adapter init failed")
		}
		logger.Info().Str("model", cfg.AI.Model).Msg("toast adapter: OpenAI")
	} else {
		toaster = aiAdapters.NewNoopAdapter()
		logger.Warn().Msg("ai.openai_key not set; /toast_toxic is disabled")
	}

	// ---- Use cases ----
	cocktailUC := usecase.NewCocktailUseCase(apiClient, recipeCache, logger)
	toastUC := usecase.NewToastUseCase(toaster, logger)
	statsUC := usecase.NewStatsUseCase(analyticsRepo, logger)

	// ---- Facade ----
	facade := application.NewBotFacade(cocktailUC, toastUC, statsUC, analyticsRepo, translator, logger)

	// ---- Telegram ----
	botAdapter, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, facade, translator, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram init failed")
	}
	if cfg.Runtime.Dev {
		// Dry-run outbound: updates are still consumed, replies only hit the log.
		botAdapter.SetOutbound(tele.NewNoopBotAdapter(logger))
		logger.Info().Msg("dev mode: outbound telegram messages are logged, not sent")
	}
	go func() {
		if err := botAdapter.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Admin HTTP server ----
	adminSrv := web.NewServer(statsUC, &cfg.Admin, !cfg.Runtime.Dev, logger)
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Admin.Port),
		Handler: adminSrv.Router(),
	}
	go func() {
		logger.Info().Int("port", cfg.Admin.Port).Msg("admin server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("admin server stopped")
		}
	}()

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	botAdapter.StopPolling()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("admin server shutdown failed")
	}
}
