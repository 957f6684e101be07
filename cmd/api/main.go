package main

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	authadapter "easytasks/internal/adapter/auth"
	dbadapter "easytasks/internal/adapter/db"
	httpadapter "easytasks/internal/adapter/http"
	"easytasks/internal/adapter/http/handlers"
	httpmiddleware "easytasks/internal/adapter/http/middleware"
	appservice "easytasks/internal/app/service"
	"easytasks/internal/config"
	"easytasks/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	if err := runMigrations(cfg); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	tokens := authadapter.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := authadapter.NewBcryptHasher()

	taskService := appservice.NewTaskService(taskRepository)
	dashboardService := appservice.NewDashboardService(taskRepository)
	authService := appservice.NewAuthService(userRepository, hasher, tokens)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, authHandler, taskHandler, dashboardHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func runMigrations(cfg *config.Config) error {
	dbURL := fmt.Sprintf(
		"mysql://%s:%s@tcp(%s:%s)/%s?%s",
		cfg.DbUser,
		cfg.DbPassword,
		cfg.DbHost,
		cfg.DbPort,
		cfg.DbName,
		cfg.DbParams,
	)

	m, err := migrate.New("file://"+cfg.MigrationsPath, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
