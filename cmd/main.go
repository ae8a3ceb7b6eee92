package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/database"
	_ "github.com/sofatesting/Sofa-Driving-Test/docs" // Swagger docs - auto-generated
	adminctrl "github.com/sofatesting/Sofa-Driving-Test/internal/controller/admin"
	examctrl "github.com/sofatesting/Sofa-Driving-Test/internal/controller/exam"
	"github.com/sofatesting/Sofa-Driving-Test/internal/logger"
	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
	"github.com/sofatesting/Sofa-Driving-Test/internal/repository"
	"github.com/sofatesting/Sofa-Driving-Test/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SOFA Driving Exam API
// @version 1.0
// @description Timed multiple-choice exam service for the SOFA driver's license written test: attempt throttling, session lifecycle, scoring and certificate issuance.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB (nil when running database-less)
			NewGinEngine,         // Provides *gin.Engine
			service.NewQuestionBank,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAttemptRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewThrottleService,
			service.NewCertificateRenderer,
			service.NewNotifier,
			service.NewQuestionDraftService,
			service.NewExamService,
			service.NewAdminResultService,
		),

		// API Controllers Layer
		fx.Provide(
			examctrl.NewExamController,
			adminctrl.NewAdminController,
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
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Bridge Gin request logging into Zerolog
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
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *examctrl.ExamController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		sessions.POST("", examCtrl.StartExam)
		sessions.GET("/:session_id", examCtrl.GetState)
		sessions.POST("/:session_id/answers", examCtrl.SubmitAnswer)
		sessions.GET("/:session_id/result", examCtrl.GetResult)
		sessions.POST("/:session_id/certificate", examCtrl.IssueCertificate)
		sessions.POST("/:session_id/restart", examCtrl.Restart)
	}

	adminAPI := api.Group("/admin")
	{
		adminAPI.GET("/results", adminCtrl.ListResults)
		adminAPI.POST("/questions/draft", adminCtrl.DraftQuestions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SOFA Driving Exam API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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

// AutoMigrateDB migrates the persistence models. A nil db means the service
// runs on in-memory stores and there is nothing to migrate.
func AutoMigrateDB(db *gorm.DB) error {
	if db == nil {
		log.Info().Msg("No database configured, skipping migrations")
		return nil
	}

	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.ExamAttempt{},
		&model.ExamResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
