package route

import (
	"database/sql"

	models "green-saas/app/models/postgresql"
	badgerRepo "green-saas/app/repository/badger"
	repoMongo "green-saas/app/repository/mongodb"
	repoPg "green-saas/app/repository/postgresql"
	mongoService "green-saas/app/service/mongodb"
	pgService "green-saas/app/service/postgresql"
	webService "green-saas/app/service/web"
	"green-saas/app/storage"
	"green-saas/config"
	"green-saas/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps holds the process-wide handles the routes are built from. Mongo and
// Images may be nil.
type Deps struct {
	Postgres *sql.DB
	Mongo    *mongo.Database
	Sessions *badger.DB
	Images   storage.ImageStore
	Config   *config.Config
}

func SetupRoutes(app *fiber.App, d Deps) {
	// Repositories
	userRepo := repoPg.NewUserRepository(d.Postgres)
	deliveryRepo := repoPg.NewDeliveryRepository(d.Postgres)
	rankingRepo := repoPg.NewRankingRepository(d.Postgres)
	referenceRepo := repoPg.NewReferenceRepository(d.Postgres)
	sessionRepo := badgerRepo.NewSessionRepository(d.Sessions)

	var auditRepo repoMongo.AuditRepository
	if d.Mongo != nil {
		auditRepo = repoMongo.NewAuditRepository(d.Mongo)
	}

	// Services
	authService := pgService.NewAuthService(userRepo, sessionRepo, d.Config)
	userService := pgService.NewUserService(userRepo)
	deliveryService := pgService.NewDeliveryService(deliveryRepo, auditRepo, d.Config)
	statisticsService := pgService.NewStatisticsService(deliveryRepo, d.Config)
	rankingService := pgService.NewRankingService(rankingRepo)
	referenceService := pgService.NewReferenceService(referenceRepo)
	uploadService := pgService.NewUploadService(d.Images, d.Config)
	auditService := mongoService.NewAuditService(auditRepo)
	pageService := webService.NewPageService()

	authRequired := middleware.AuthRequired(sessionRepo)
	authOptional := middleware.AuthOptional(sessionRepo)
	adminOnly := middleware.RoleAllowed(models.RoleAdmin)

	app.Static("/static", "./static")
	api := app.Group("/api/v1")

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/verify", authService.Verify)
	auth.Post("/login", authService.Login)
	auth.Post("/logout", authRequired, authService.Logout)
	auth.Get("/profile", authRequired, authService.Profile)

	// Reference data
	api.Get("/units", referenceService.GetUnits)
	api.Get("/courses", referenceService.GetCourses)
	api.Get("/classes", referenceService.GetClasses)

	// Deliveries
	api.Get("/deliveries/audit", authRequired, adminOnly, auditService.GetAudit)
	api.Get("/deliveries", authOptional, deliveryService.GetDeliveries)
	api.Post("/deliveries", authOptional, deliveryService.CreateDelivery)
	api.Post("/upload", authOptional, uploadService.UploadImage)

	// Aggregates
	api.Get("/statistics", statisticsService.GetStatistics)
	api.Get("/ranking", rankingService.GetRanking)

	// Accounts
	api.Post("/users", authRequired, adminOnly, userService.CreateUser)

	// Pages
	gate := middleware.DashboardGate(sessionRepo)
	app.Get(middleware.LoginPath, gate, pageService.Login)

	dash := app.Group(middleware.ProtectedPrefix, gate)
	dash.Get("/", pageService.Page("dashboard/admin", "Painel"))
	dash.Get("/aluno", pageService.Page("dashboard/student", "Minha turma"))
	dash.Get("/aluno/ranking", pageService.Page("dashboard/page", "Ranking"))
	dash.Get("/nova-entrega", pageService.Page("dashboard/nova-entrega", "Nova entrega"))
	dash.Get("/ajuda", pageService.Page("dashboard/page", "Ajuda"))
	dash.Get("/entregas", pageService.Page("dashboard/page", "Entregas"))
	dash.Get("/turmas", pageService.Page("dashboard/page", "Turmas"))
	dash.Get("/historico", pageService.Page("dashboard/page", "Histórico"))
}
