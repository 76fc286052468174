package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/assistant"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/auth"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/importer"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/movement"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/report"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/usecase"
)

// RouterDeps rota kurulumunun ihtiyaç duyduğu kullanım durumları.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	PartyUC     *usecase.PartyUseCase
	MovementUC  *movement.UseCase
	ReportUC    *report.UseCase
	AssistantUC *assistant.UseCase
	ImportUC    *importer.UseCase
	JWTSecret   string
}

// SetupRoutes tüm API rotalarını kaydeder.
//
// Erişim modeli: login dışındaki her uç JWT ister. Yazma uçları admin ve
// depocu rollerine, kullanıcı yönetimi ile içe aktarma yalnızca admin'e
// açıktır. izleyici dahil tüm roller raporları okuyabilir.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.LocationUC, deps.PartyUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	importHandler := NewImportHandler(deps.ImportUC)

	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole("admin")
	writers := RequireRole("admin", "depocu")

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	protected.Post("/products", writers, catalogHandler.CreateProduct)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Delete("/products/:id", writers, catalogHandler.DeactivateProduct)

	protected.Post("/locations", writers, catalogHandler.CreateLocation)
	protected.Get("/locations", catalogHandler.ListLocations)
	protected.Delete("/locations/:id", writers, catalogHandler.DeactivateLocation)

	protected.Post("/parties", writers, catalogHandler.CreateParty)
	protected.Get("/parties", catalogHandler.ListParties)
	protected.Delete("/parties/:id", writers, catalogHandler.DeactivateParty)

	protected.Post("/movements/receipt", writers, movementHandler.Receipt)
	protected.Post("/movements/issue", writers, movementHandler.Issue)
	protected.Post("/movements/transfer", writers, movementHandler.Transfer)
	protected.Post("/movements/assign", writers, movementHandler.Assign)
	protected.Post("/movements/return", writers, movementHandler.Return)

	protected.Get("/assets", reportHandler.Assets)
	protected.Get("/assets/:id", reportHandler.GetAsset)

	protected.Get("/reports/stock", reportHandler.StockStatus)
	protected.Get("/reports/low-stock", reportHandler.LowStock)
	protected.Get("/reports/movements", reportHandler.Movements)
	protected.Get("/reports/custody", reportHandler.Custody)
	protected.Get("/reports/custody-form", reportHandler.CustodyForm)

	protected.Post("/assistant/ask", assistantHandler.Ask)

	protected.Post("/import/excel", adminOnly, importHandler.ImportExcel)
}
