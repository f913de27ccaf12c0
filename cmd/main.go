package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/database"
	_ "github.com/mindtrace/bpdscreen/docs" // Swagger docs
	"github.com/mindtrace/bpdscreen/internal/controller/authctrl"
	"github.com/mindtrace/bpdscreen/internal/controller/paymentctrl"
	"github.com/mindtrace/bpdscreen/internal/controller/quizctrl"
	"github.com/mindtrace/bpdscreen/internal/controller/resultctrl"
	"github.com/mindtrace/bpdscreen/internal/logger"
	"github.com/mindtrace/bpdscreen/internal/middleware"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title BPD Screening API
// @version 1.0
// @description Self-administered BPD symptom screening: question bank, session state, scoring, entitlement-gated results and payment reconciliation.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewResultRepository,
			repository.NewEntitlementRepository,
			repository.NewSubscriptionRepository,
			repository.NewUserRepository,
		),

		// Services
		fx.Provide(
			service.NewQuizService,
			service.NewResultService,
			service.NewIdentityService,
			service.NewPaymentService,
			service.NewReconcileService,
			service.NewReportService,
		),

		// Controllers
		fx.Provide(
			quizctrl.NewQuizController,
			resultctrl.NewResultController,
			paymentctrl.NewPaymentController,
			authctrl.NewAuthController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderAnonymousID},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	identityService service.IdentityService,
	quizCtrl *quizctrl.QuizController,
	resultCtrl *resultctrl.ResultController,
	paymentCtrl *paymentctrl.PaymentController,
	authCtrl *authctrl.AuthController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.Identity(identityService))
	{
		api.POST("/auth/oauth", authCtrl.ExchangeOAuth)
		api.GET("/auth/me", middleware.RequireUser(), authCtrl.Me)

		api.GET("/quiz/questions", quizCtrl.GetQuestions)

		session := api.Group("/quiz/session")
		session.Use(middleware.RequireSubject())
		{
			session.GET("", quizCtrl.GetState)
			session.POST("/answer", quizCtrl.Answer)
			session.POST("/next", quizCtrl.Next)
			session.POST("/previous", quizCtrl.Previous)
			session.POST("/complete", quizCtrl.Complete)
			session.POST("/reset", quizCtrl.Reset)
		}

		results := api.Group("/results")
		results.Use(middleware.RequireSubject())
		{
			results.GET("/latest", resultCtrl.GetLatest)
			results.POST("/latest/specialist-note", middleware.RequireUser(), resultCtrl.SpecialistNote)
		}

		pay := api.Group("/payment")
		pay.Use(middleware.RequireUser())
		{
			pay.POST("/checkout", paymentCtrl.Checkout)
			pay.GET("/callback", paymentCtrl.Callback)
			pay.GET("/entitlement", paymentCtrl.GetEntitlement)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("BPD Screening API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.TestResult{},
		&model.Entitlement{},
		&model.Subscription{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
