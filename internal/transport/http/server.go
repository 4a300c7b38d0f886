package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"managerdocs/internal/ai"
	appsvc "managerdocs/internal/app"
	"managerdocs/internal/bootstrap"
	"managerdocs/internal/cache"
	"managerdocs/internal/contextwin"
	"managerdocs/internal/platform/rabbitmq"
	"managerdocs/internal/repository"
	"managerdocs/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	personRepo := repository.NewPersonRepository(app.MySQL)
	programRepo := repository.NewProgramRepository(app.MySQL)
	riskRepo := repository.NewRiskRepository(app.MySQL)
	updateRepo := repository.NewProgramUpdateRepository(app.MySQL)
	sessionRepo := repository.NewSessionRepository(app.MySQL)
	actionItemRepo := repository.NewActionItemRepository(app.MySQL)
	artifactRepo := repository.NewArtifactRepository(app.MySQL)
	documentRepo := repository.NewGeneratedDocumentRepository(app.MySQL)

	snapshotCache := cache.NewSnapshotCache(
		app.Redis,
		time.Duration(app.Config.Redis.SnapshotTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.SnapshotDirtyTTLSeconds)*time.Second,
	)
	selector := contextwin.NewSelector(
		sessionRepo,
		actionItemRepo,
		artifactRepo,
		programRepo,
		riskRepo,
		app.Config.Context.MaxPastSessions,
		app.Config.Context.ArtifactWindowDays,
	)
	publisher := rabbitmq.NewDocumentPublisher(app.MQConn, app.Config.RabbitMQ.DocumentPersistQueue)

	directoryService := appsvc.NewDirectoryService(
		personRepo,
		sessionRepo,
		actionItemRepo,
		artifactRepo,
		documentRepo,
		snapshotCache,
	)
	programService := appsvc.NewProgramService(programRepo, riskRepo, updateRepo)
	generationService := appsvc.NewGenerationService(
		selector,
		personRepo,
		programRepo,
		sessionRepo,
		updateRepo,
		ai.NewClient(),
		ai.Config{
			BaseURL: app.Config.LLM.BaseURL,
			APIKey:  app.Config.LLM.APIKey,
			Model:   app.Config.LLM.Model,
		},
		publisher,
		snapshotCache,
	)

	personHandler := handler.NewPersonHandler(directoryService)
	programHandler := handler.NewProgramHandler(programService)
	sessionHandler := handler.NewSessionHandler(directoryService)
	documentHandler := handler.NewDocumentHandler(directoryService)
	generateHandler := handler.NewGenerateHandler(generationService)

	v1 := router.Group("/api/v1")

	people := v1.Group("/people")
	people.POST("", personHandler.Create)
	people.GET("", personHandler.List)
	people.GET("/:id", personHandler.Get)
	people.PUT("/:id", personHandler.Update)
	people.DELETE("/:id", personHandler.Delete)
	people.GET("/:id/sessions", sessionHandler.ListByPerson)
	people.GET("/:id/documents", personHandler.ListDocuments)
	people.GET("/:id/action-items", personHandler.ListOpenActionItems)

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionHandler.Create)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.PUT("/:id", sessionHandler.Update)
	sessions.DELETE("/:id", sessionHandler.Delete)
	sessions.GET("/:id/blocks", sessionHandler.GetBlocks)
	sessions.POST("/:id/action-items", sessionHandler.AddActionItem)
	sessions.GET("/:id/action-items", sessionHandler.ListActionItems)
	sessions.POST("/:id/action-items/import", sessionHandler.ImportActionItems)
	sessions.POST("/:id/artifacts", sessionHandler.AddArtifact)
	sessions.GET("/:id/artifacts", sessionHandler.ListArtifacts)

	actionItems := v1.Group("/action-items")
	actionItems.PUT("/:id/completed", sessionHandler.SetActionItemCompleted)
	actionItems.DELETE("/:id", sessionHandler.DeleteActionItem)

	artifacts := v1.Group("/artifacts")
	artifacts.DELETE("/:id", sessionHandler.DeleteArtifact)

	programs := v1.Group("/programs")
	programs.POST("", programHandler.Create)
	programs.GET("", programHandler.List)
	programs.GET("/:id", programHandler.Get)
	programs.PUT("/:id", programHandler.Update)
	programs.DELETE("/:id", programHandler.Delete)
	programs.POST("/:id/risks", programHandler.AddRisk)
	programs.GET("/:id/risks", programHandler.ListRisks)
	programs.POST("/:id/updates", programHandler.CreateUpdate)
	programs.GET("/:id/updates", programHandler.ListUpdates)

	risks := v1.Group("/risks")
	risks.PUT("/:id", programHandler.UpdateRisk)
	risks.DELETE("/:id", programHandler.DeleteRisk)

	updates := v1.Group("/program-updates")
	updates.DELETE("/:id", programHandler.DeleteUpdate)

	documents := v1.Group("/documents")
	documents.GET("", documentHandler.List)
	documents.GET("/:id", documentHandler.Get)
	documents.GET("/:id/blocks", documentHandler.GetBlocks)
	documents.DELETE("/:id", documentHandler.Delete)

	generate := v1.Group("/generate")
	generate.POST("/session-summary", generateHandler.SessionSummary)
	generate.POST("/person-document", generateHandler.PersonDocument)
	generate.POST("/program-report", generateHandler.ProgramReport)

	return router
}
