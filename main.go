package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"silwer/config"
	_ "silwer/docs"
	"silwer/internal/caldav"
	"silwer/internal/repository"
	"silwer/internal/service"
	"silwer/internal/storage"
	"silwer/internal/transport/rest"
	"silwer/pkg/database"
	"silwer/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Silwer Lining API
// @version 1.0
// @description API фотостудии: бронирование съемок, расписание и контент сайта

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Не удалось загрузить конфигурацию", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	log.Info("Запуск миграций базы данных")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("Ошибка при выполнении миграций", zap.Error(err))
	}
	log.Info("Миграции успешно выполнены")

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("Не удалось инициализировать S3 хранилище", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 хранилище успешно инициализировано", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 хранилище не настроено, загрузка файлов будет недоступна")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		CalDAV:      caldav.NewClient(cfg.Availability.CalDAVTimeout),
	})

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		err := services.Auth.EnsureDefaultAdmin(
			context.Background(),
			email,
			os.Getenv("ADMIN_PASSWORD"),
			os.Getenv("ADMIN_NAME"),
		)
		if err != nil {
			log.Fatal("Не удалось создать администратора по умолчанию", zap.Error(err))
		}
	}

	if err := services.Package.EnsureDefaults(context.Background()); err != nil {
		log.Warn("Не удалось записать стартовый прайс", zap.Error(err))
	}

	// фоновый прогрев кэша внешнего календаря
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(cfg.Availability.CacheTTL)
		defer ticker.Stop()

		if err := services.Calendar.Refresh(refreshCtx); err != nil {
			log.Warn("Не удалось обновить кэш календаря при старте", zap.Error(err))
		}

		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if err := services.Calendar.Refresh(refreshCtx); err != nil {
					log.Warn("Не удалось обновить кэш календаря", zap.Error(err))
				}
			}
		}
	}()

	handler := rest.NewHandler(services, log, cfg)

	router := gin.Default()

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	log.Info("Сервер запущен", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Выключение сервера...")

	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Ошибка при остановке сервера", zap.Error(err))
	}

	log.Info("Сервер успешно остановлен")
}
