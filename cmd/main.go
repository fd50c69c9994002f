// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/dispatch"
	"go_5_english_tutor/internal/exercise"
	"go_5_english_tutor/internal/handlers"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/repository"
	"go_5_english_tutor/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	log.Println("Log Config Loaded...")

	// Configファイルの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("name", config.AppName), slog.String("version", config.AppVersion))

	// Dependency Injection
	policy, err := exercise.ParseCompletionPolicy(config.Cfg.Exercise.PairCompletionPolicy)
	if err != nil {
		slog.Error("Invalid pair completion policy", slog.Any("error", err))
		os.Exit(1)
	}
	dispatcher := dispatch.NewDispatcher(exercise.PairMatchOptions{
		Policy:   policy,
		Cooldown: config.Cfg.Exercise.PairCooldown,
	}, logger)

	apiClient := repository.NewAPIClient(config.Cfg.Backend.BaseURL, config.Cfg.Backend.Timeout)
	lessonRepo := repository.NewAPILessonRepository(apiClient)
	studyPlanRepo := repository.NewAPIStudyPlanRepository(apiClient)
	tutorRepo := repository.NewAPITutorRepository(apiClient)

	notifier := service.NewNotifier(&config.Cfg)
	reporter := service.NewAnswerReporter(lessonRepo, notifier)
	sessionService := service.NewLessonSessionService(lessonRepo, studyPlanRepo, reporter, notifier, dispatcher)
	studyPlanService := service.NewStudyPlanService(studyPlanRepo, notifier)
	tutorService := service.NewTutorService(tutorRepo, sessionService, notifier)

	lessonHandler := handlers.NewLessonHandler(sessionService, logger)
	studyPlanHandler := handlers.NewStudyPlanHandler(studyPlanService, sessionService, logger)
	tutorHandler := handlers.NewTutorHandler(tutorService, logger)
	noticeHandler := handlers.NewNoticeHandler(notifier, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// チューターAPIのレッスン生成は遅いので、バックエンドのタイムアウトより少し長くする
	r.Use(chimiddleware.Timeout(config.Cfg.Backend.Timeout + 5*time.Second))

	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if config.Cfg.Auth.Enabled {
			slog.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(middleware.AuthConfig{
				Secret:   config.Cfg.Auth.JWTSecret,
				Audience: config.Cfg.Auth.Audience,
			}))
		} else {
			slog.Warn("Authentication disabled, using development middleware (X-Student-ID)")
			r.Use(middleware.DevAuthMiddleware)
		}
		r.Use(middleware.StudentLogger)
		r.Use(middleware.LocaleMiddleware(config.Cfg.Locale.StudentDefault))

		// Study plan routes
		r.Route("/study-plan", func(r chi.Router) {
			r.Get("/", studyPlanHandler.GetStudyPlan)
			r.Post("/start", studyPlanHandler.StartLesson)
		})

		// Lesson routes
		r.Route("/lesson", func(r chi.Router) {
			r.Get("/", lessonHandler.GetLesson)
			r.Post("/generate", lessonHandler.GenerateLesson)
			r.Post("/complete", lessonHandler.CompleteLesson)
			r.Post("/items/{item_id}/actions", lessonHandler.ActOnItem)
			r.Post("/items/{item_id}/report/retry", lessonHandler.RetryReport)
		})

		// Tutor routes
		r.Route("/tutor", func(r chi.Router) {
			r.Get("/messages", tutorHandler.GetMessages)
			r.Post("/messages/{message_id}/read", tutorHandler.MarkMessageRead)
			r.Post("/interact", tutorHandler.Interact)
		})

		r.Get("/notices", noticeHandler.GetNotices)
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  config.Cfg.Server.ReadTimeout,
		WriteTimeout: config.Cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV に合わせて slog ロガーを作ります
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
