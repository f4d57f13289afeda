package routes

import (
	"log"

	"club-stats-backend/internal/api/handlers"
	"club-stats-backend/internal/api/middleware"
	"club-stats-backend/internal/auth"
	"club-stats-backend/internal/config"
	"club-stats-backend/internal/logger"
	"club-stats-backend/internal/repository"
	"club-stats-backend/internal/service"
	"club-stats-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	appLogger := logger.New()

	// Initialize repositories
	clubRepo := repository.NewClubRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	gameRepo := repository.NewGameRepository(db)
	resultRepo := repository.NewGameResultRepository(db)
	teamResultRepo := repository.NewTeamGameResultRepository(db)
	coopRepo := repository.NewCooperativeResultRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Optional export upload target
	var uploader storage.Uploader
	if cfg.ExportUploadEnabled() {
		var err error
		uploader, err = storage.NewS3Uploader(storage.S3UploaderConfig{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3Bucket,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Printf("Warning: export upload disabled: %v", err)
		}
	}

	// Initialize services
	clubService := service.NewClubService(clubRepo, validator)
	memberService := service.NewMemberService(memberRepo, clubRepo, validator)
	teamService := service.NewTeamService(teamRepo, memberRepo, validator)
	gameService := service.NewGameService(gameRepo, validator)
	resultService := service.NewGameResultService(resultRepo, gameRepo, memberRepo, validator, appLogger)
	teamResultService := service.NewTeamGameResultService(teamResultRepo, gameRepo, teamRepo, validator, appLogger)
	coopService := service.NewCooperativeResultService(coopRepo, gameRepo, memberRepo, teamRepo, validator, appLogger)
	statsService := service.NewStatsService(statsRepo, memberRepo, gameRepo)
	exportService := service.NewExportService(clubRepo, memberRepo, teamRepo, gameRepo, resultRepo, teamResultRepo, coopRepo, uploader, cfg.ExportDir, appLogger)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	clubHandler := handlers.NewClubHandler(clubService)
	memberHandler := handlers.NewMemberHandler(memberService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameHandler := handlers.NewGameHandler(gameService)
	resultHandler := handlers.NewGameResultHandler(resultService)
	teamResultHandler := handlers.NewTeamGameResultHandler(teamResultService)
	coopHandler := handlers.NewCooperativeResultHandler(coopService)
	statsHandler := handlers.NewStatsHandler(statsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Club routes
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", clubHandler.ListClubs)
			clubs.POST("", clubHandler.CreateClub)
			clubs.GET("/:id", clubHandler.GetClub)
			clubs.PUT("/:id", clubHandler.UpdateClub)
			clubs.DELETE("/:id", clubHandler.DeleteClub)
			clubs.GET("/by-slug/:slug", clubHandler.GetClubBySlug)
			clubs.GET("/:id/members", memberHandler.GetMembersByClub)
			clubs.GET("/:id/teams", teamHandler.GetTeamsByClub)
			clubs.GET("/:id/games", gameHandler.GetGamesByClub)
			clubs.GET("/:id/standings", statsHandler.GetClubStandings)
			clubs.POST("/:id/export", exportHandler.ExportClub)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.GetMembersByClub) // Requires club_id parameter
			members.POST("", memberHandler.CreateMember)
			members.GET("/search", memberHandler.SearchMembers) // Requires club_id and q parameters
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.GET("/:id/stats", statsHandler.GetMemberStats)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetTeamsByClub) // Requires club_id parameter
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Game routes
		games := v1.Group("/games")
		{
			games.GET("", gameHandler.GetGamesByClub) // Requires club_id parameter
			games.POST("", gameHandler.CreateGame)
			games.GET("/search", gameHandler.SearchGames) // Requires club_id and q parameters
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", gameHandler.UpdateGame)
			games.DELETE("/:id", gameHandler.DeleteGame)
			games.GET("/:id/coop-record", statsHandler.GetGameCoopRecord)
		}

		// Individual result routes
		results := v1.Group("/results")
		{
			results.GET("", resultHandler.ListGameResults) // Requires game_id or club_id parameter
			results.POST("", resultHandler.CreateGameResult)
			results.GET("/by-session/:session_id", resultHandler.GetGameResultBySession)
			results.GET("/:id", resultHandler.GetGameResult)
			results.PUT("/:id", resultHandler.UpdateGameResult)
			results.DELETE("/:id", resultHandler.DeleteGameResult)
		}

		// Team result routes
		teamResults := v1.Group("/team-results")
		{
			teamResults.GET("", teamResultHandler.ListTeamGameResults)
			teamResults.POST("", teamResultHandler.CreateTeamGameResult)
			teamResults.GET("/:id", teamResultHandler.GetTeamGameResult)
			teamResults.PUT("/:id", teamResultHandler.UpdateTeamGameResult)
			teamResults.DELETE("/:id", teamResultHandler.DeleteTeamGameResult)
		}

		// Cooperative result routes
		coopResults := v1.Group("/coop-results")
		{
			coopResults.GET("", coopHandler.ListCoopResults)
			coopResults.POST("", coopHandler.CreateCoopResult)
			coopResults.GET("/:id", coopHandler.GetCoopResult)
			coopResults.PUT("/:id", coopHandler.UpdateCoopResult)
			coopResults.DELETE("/:id", coopHandler.DeleteCoopResult)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})

	return router
}
