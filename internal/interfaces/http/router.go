package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/audit"
	"github.com/jhoicas/consigna-api/internal/application/auth"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/application/partner"
	"github.com/jhoicas/consigna-api/internal/application/returns"
	"github.com/jhoicas/consigna-api/internal/application/sales"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SupplierUC *partner.SupplierUseCase
	IntakeUC   *inventory.IntakeUseCase
	StockUC    *inventory.StockQueryUseCase
	SaleUC     *sales.SaleUseCase
	ReturnUC   *returns.ReturnUseCase
	AuditUC    *audit.AuditUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Suppliers (protegido; altas, cambios y bajas solo para rol master)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/search", supplierHandler.Search)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", RequireRole(entity.RoleMaster), supplierHandler.Create)
	suppliers.Patch("/:id", RequireRole(entity.RoleMaster), supplierHandler.Update)
	suppliers.Put("/:id/active", RequireRole(entity.RoleMaster), supplierHandler.SetActive)

	// Intake batches (protegido)
	batches := protected.Group("/batches")
	intakeHandler := NewIntakeHandler(deps.IntakeUC)
	batches.Post("/", intakeHandler.CreateBatch)
	batches.Get("/", intakeHandler.ListByPeriod)
	batches.Get("/:id", intakeHandler.GetByID)
	batches.Post("/:id/items", intakeHandler.AddItem)
	batches.Get("/:id/items", intakeHandler.ListItems)
	batches.Post("/:id/finalize", intakeHandler.Finalize)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.Overview)
	stock.Get("/plan", stockHandler.Plan)
	stock.Get("/stats", stockHandler.Stats)
	stock.Get("/scan/:code", stockHandler.Scan)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Start)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/lines", saleHandler.AddLine)
	salesGroup.Post("/:id/finalize", saleHandler.Finalize)
	salesGroup.Post("/:id/cancel", saleHandler.Cancel)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reports.Get("/sales", saleHandler.SalesByPeriod)
	reports.Get("/daily", saleHandler.DailySummary)

	// Log de acciones (solo master)
	logsGroup := protected.Group("/logs", RequireRole(entity.RoleMaster))
	auditHandler := NewAuditHandler(deps.AuditUC)
	logsGroup.Get("/", auditHandler.ListByPeriod)
	logsGroup.Get("/actor/:id", auditHandler.ListByActor)

	// Returns (protegido)
	returnsGroup := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returnsGroup.Get("/batches", returnHandler.ListBatches)
	returnsGroup.Get("/batches/:id/items", returnHandler.ListItems)
	returnsGroup.Post("/", returnHandler.Process)
}
