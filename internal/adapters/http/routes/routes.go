package routes

import (
	"shelftrack/internal/adapters/http/handlers"
	"shelftrack/internal/adapters/http/middleware"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/config"
	"shelftrack/internal/core/services"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application.
//
// Auth policy is declared in one place: reads are public, mutating verbs
// (POST/PUT/DELETE) go through the API-key check. Per-module middleware
// wiring is deliberately avoided.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	issuanceRepo := repositories.NewIssuanceRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)

	// Initialize services
	reportService := services.NewReportService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberRepo, issuanceRepo)
	bookHandler := handlers.NewBookHandler(bookRepo, catalogRepo, issuanceRepo)
	issuanceHandler := handlers.NewIssuanceHandler(issuanceRepo, bookRepo, memberRepo)
	contactHandler := handlers.NewContactHandler(contactRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	// Single credential gate for all mutating routes
	protected := middleware.APIKeyAuth(middleware.StaticKeyVerifier(cfg.APIKey))

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Member routes
	member := app.Group("/member")
	member.Get("/", memberHandler.List)
	member.Get("/:id", memberHandler.Get)
	member.Post("/", protected, memberHandler.Create)
	member.Put("/:id", protected, memberHandler.Update)
	member.Delete("/:id", protected, memberHandler.Delete)

	// Book routes
	book := app.Group("/book")
	book.Get("/", bookHandler.List)
	book.Get("/:id", bookHandler.Get)
	book.Post("/", protected, bookHandler.Create)
	book.Put("/:id", protected, bookHandler.Update)
	book.Delete("/:id", protected, bookHandler.Delete)

	// Issuance routes
	issuance := app.Group("/issuance")
	issuance.Get("/", issuanceHandler.List)
	issuance.Get("/:id", issuanceHandler.Get)
	issuance.Post("/", protected, issuanceHandler.Create)
	issuance.Put("/:id", protected, issuanceHandler.Update)
	issuance.Delete("/:id", protected, issuanceHandler.Delete)

	// Catalog routes (read-only, seeded masters)
	app.Get("/categories", catalogHandler.ListCategories)
	app.Get("/collections", catalogHandler.ListCollections)

	// Contact routes
	contacts := app.Group("/contacts")
	contacts.Post("/", protected, contactHandler.Create)
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.Get)
	contacts.Delete("/:id", protected, contactHandler.Delete)

	// Report routes (read-only)
	reports := app.Group("/reports")
	reports.Get("/never-borrowed", reportHandler.NeverBorrowed)
	reports.Get("/outstanding-books", reportHandler.OutstandingBooks)
	reports.Get("/top-borrowed-books", reportHandler.TopBorrowedBooks)

	// Blanket 404 for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Not Found")
	})
}
