package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "impactio/docs"
	"impactio/internal/authz"
	"impactio/internal/config"
	"impactio/internal/handlers"
	"impactio/internal/middleware"
	"impactio/internal/pdf"
	"impactio/internal/repositories"
	"impactio/internal/routes"
	"impactio/internal/services"
)

func Run(cfg *config.Config) error {
	log := zap.L()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return eris.Wrap(err, "open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// === Filter store ===
	filterStore, closeStore := newFilterStore(cfg)
	defer closeStore()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	convRepo := repositories.NewConversationRepository(db)

	// === Services ===
	tokens := authz.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	dashboardService := services.NewDashboardService(
		leadRepo,
		convRepo,
		filterStore,
		cfg.DateFormat(),
		cfg.Database.QueryTimeout,
	)

	var emailService services.EmailService
	if cfg.Email.Enabled() {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	} else {
		log.Info("email export disabled: smtp_host/from_email not set")
	}

	// PDF: для кириллицы укажи display.font_path (например assets/fonts/DejaVuSans.ttf)
	pdfGen := pdf.NewReportGenerator(cfg.Display.FontPath)
	exportService := services.NewExportService(dashboardService, pdfGen, emailService)

	// Telegram опционален; nil-интерфейс, если не настроен
	var notifier services.Notifier
	if cfg.Telegram.Enabled() {
		tg, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Warn("telegram digest disabled", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService, cfg.Server.SecureCookie)
	healthHandler := handlers.NewHealthHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(dashboardHandler, exportService, notifier)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Роуты (сессия проверяется внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		authService,
		cfg.Server.LoginPath,
		authHandler,
		healthHandler,
		dashboardHandler,
		exportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server started", zap.String("addr", listenAddr))
	if err := router.Run(listenAddr); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "run server")
	}
	return nil
}

// newFilterStore uses Redis when configured and reachable, memory otherwise.
func newFilterStore(cfg *config.Config) (services.FilterStore, func()) {
	noop := func() {}
	if cfg.Redis.Addr == "" {
		return services.NewMemoryFilterStore(cfg.Display.FilterTTL), noop
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, filter selections kept in memory",
			zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return services.NewMemoryFilterStore(cfg.Display.FilterTTL), noop
	}
	return services.NewRedisFilterStore(client, cfg.Display.FilterTTL), func() { _ = client.Close() }
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
