package main

import (
	"context"
	"net/http"
	"time"

	"github.com/areto-app/areto/config"
	"github.com/areto-app/areto/database"
	_ "github.com/areto-app/areto/docs" // Swagger docs
	"github.com/areto-app/areto/internal/controller"
	"github.com/areto-app/areto/internal/dto"
	"github.com/areto-app/areto/internal/logger"
	"github.com/areto-app/areto/internal/model"
	"github.com/areto-app/areto/internal/ratelimit"
	"github.com/areto-app/areto/internal/repository"
	"github.com/areto-app/areto/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Areto Quiz API
// @version 1.0
// @description API for building and playing multiple-choice quizzes with per-quiz running statistics.
// @host localhost:5000
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			ratelimit.NewRedisClient,
			ratelimit.NewLimiter,
		),

		fx.Provide(
			repository.NewQuizRepository,
		),

		fx.Provide(
			service.NewQuizService,
			service.NewCompletionService,
		),

		fx.Provide(
			controller.NewQuizController,
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	limiter *ratelimit.Limiter,
	quizCtrl *controller.QuizController,
) {
	// The limiter sits in front of every route, the banner included.
	router.Use(limiter.Middleware())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.BannerResponse{
			Message: "Areto Quiz API",
			Status:  "running",
			Version: "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		quizzes.GET("", quizCtrl.ListQuizzes)
		quizzes.GET("/:id", quizCtrl.GetQuiz)
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.PUT("/:id", quizCtrl.UpdateQuiz)
		quizzes.DELETE("/:id", quizCtrl.DeleteQuiz)
		quizzes.POST("/:id/complete", quizCtrl.CompleteQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Areto Quiz API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Quiz{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
