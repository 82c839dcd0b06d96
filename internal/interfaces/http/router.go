package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/auth"
	appsearch "github.com/ArthurS357/capcom-suprimentos-api/internal/application/search"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/usecase"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SearchSvc   *appsearch.Service
	ProductUC   *usecase.ProductUseCase
	BrandUC     *usecase.BrandUseCase
	CategoryUC  *usecase.CategoryUseCase
	PrinterUC   *usecase.PrinterUseCase
	BannerUC    *usecase.StoreConfigUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra as rotas da API: vitrine pública e painel admin protegido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Vitrine pública
	searchHandler := NewSearchHandler(deps.SearchSvc)
	productHandler := NewProductHandler(deps.ProductUC)
	brandHandler := NewBrandHandler(deps.BrandUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	bannerHandler := NewBannerHandler(deps.BannerUC)

	api.Get("/products", searchHandler.Search)
	api.Get("/products/compatible", searchHandler.Compatible)
	api.Get("/products/:slug", productHandler.GetBySlug)
	api.Get("/filters", searchHandler.Filters)
	api.Get("/brands", brandHandler.List)
	api.Get("/brands/:slug", brandHandler.GetBySlug)
	api.Get("/categories", categoryHandler.Tree)
	api.Get("/categories/:slug", categoryHandler.GetBySlug)
	api.Get("/banner", bannerHandler.Get)

	// Painel admin (Bearer Token + papel admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	admin.Get("/products", productHandler.List)
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	admin.Post("/brands", brandHandler.Create)
	admin.Put("/brands/:id", brandHandler.Update)
	admin.Delete("/brands/:id", brandHandler.Delete)

	admin.Post("/categories", categoryHandler.Create)
	admin.Put("/categories/:id", categoryHandler.Update)
	admin.Delete("/categories/:id", categoryHandler.Delete)

	printerHandler := NewPrinterHandler(deps.PrinterUC)
	admin.Get("/printers", printerHandler.List)
	admin.Post("/printers", printerHandler.Create)
	admin.Delete("/printers/:id", printerHandler.Delete)
	admin.Post("/printers/:id/compatibilities/:cartridgeId", printerHandler.Link)
	admin.Delete("/printers/:id/compatibilities/:cartridgeId", printerHandler.Unlink)

	admin.Put("/banner", bannerHandler.Set)
}
