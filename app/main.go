package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"fiber-service/internal/integrations/calendar"
	"fiber-service/internal/listeners"
	"fiber-service/internal/repositories"
	"fiber-service/internal/routes"
	"fiber-service/pkg/config"
	"fiber-service/pkg/customvalidator"
	"fiber-service/pkg/database/postgresql"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/eventbus"
	applogger "fiber-service/pkg/logger"
	"fiber-service/pkg/metrics"
	appmiddleware "fiber-service/pkg/middleware"
	"fiber-service/pkg/utils"
	"fiber-service/pkg/worker"
	"fiber-service/seeders"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	m := metrics.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))
	e.Use(appmiddleware.InjectLogger(logger))
	e.Use(appmiddleware.RequestObserver(logger, m))

	// 3. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. Хранилище
	store, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address, Password: cfg.Redis.Password})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis недоступен, справочники без кеша", zap.Error(err), zap.String("address", cfg.Redis.Address))
		} else {
			store = store.WithCatalogCache(repositories.NewRedisCacheRepository(redisClient, "fiber"), cfg.Redis.CacheTTL, logger)
			logger.Info("Кеш справочников включён", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.CacheTTL))
		}
	}

	// 5. Начальные данные
	if cfg.Storage.SeedOnStart {
		if err := seeders.SeedDefaults(ctx, store, logger); err != nil {
			logger.Fatal("Ошибка наполнения справочников", zap.Error(err))
		}
	}

	// 6. Пул воркеров, шина событий и слушатели
	pool, err := worker.NewPool(cfg.Worker.PoolSize, logger)
	if err != nil {
		logger.Fatal("Не удалось создать пул воркеров", zap.Error(err))
	}
	bus := eventbus.New(pool, cfg.Worker.EventTimeout, logger)
	listeners.NewCalendarListener(calendar.NewStubProvider(logger), m, logger).Register(bus)

	// 7. Маршруты
	routes.InitRouter(e, routes.Dependencies{
		Store:   store,
		Events:  bus,
		Metrics: m,
		Logger:  logger,
	})

	// 8. Запуск и корректная остановка
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке HTTP-сервера", zap.Error(err))
	}
	pool.Release(shutdownTimeout)
	logger.Info("Сервер остановлен")
}

// openStore выбирает хранилище по STORAGE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories.Store, func()) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("Используется хранилище в памяти: данные не сохраняются между запусками")
		return repositories.NewMemoryStore(), func() {}
	}

	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("Не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	logger.Info("✅ Подключено к PostgreSQL")

	if cfg.Postgres.AutoMigrate {
		if err := postgresql.Migrate(pool); err != nil {
			pool.Close()
			logger.Fatal("Ошибка применения миграций", zap.Error(err))
		}
		logger.Info("Миграции применены")
	}
	return repositories.NewPostgresStore(pool), pool.Close
}
