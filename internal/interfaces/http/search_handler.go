package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	appsearch "github.com/ArthurS357/capcom-suprimentos-api/internal/application/search"
)

// SearchHandler atende a busca pública de produtos e o catálogo de filtros.
type SearchHandler struct {
	svc *appsearch.Service
}

// NewSearchHandler constrói o handler.
func NewSearchHandler(svc *appsearch.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary      Buscar produtos
// @Tags         catalog
// @Produce      json
// @Param        q       query  string  false  "Texto livre (nome, descrição, marca ou impressora compatível)"
// @Param        brands  query  string  false  "Marcas exatas, separadas por vírgula"
// @Param        types   query  string  false  "Tipos exatos, separados por vírgula"
// @Success      200  {array}   dto.ProductListingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
//
// Sem nenhum critério devolve o catálogo inteiro ordenado por nome; a UI
// sempre envia ao menos um critério, então não aplicamos limite aqui.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchRequest{
		Query:  c.Query("q"),
		Brands: splitCSV(c.Query("brands")),
		Types:  splitCSV(c.Query("types")),
	}
	out, err := h.svc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Filters godoc
// @Summary      Catálogo de filtros (marcas e tipos)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.FiltersResponse
// @Router       /api/filters [get]
func (h *SearchHandler) Filters(c *fiber.Ctx) error {
	out, err := h.svc.Filters()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Compatible godoc
// @Summary      Produtos compatíveis com um modelo de impressora
// @Tags         catalog
// @Produce      json
// @Param        model  query  string  true  "Modelo (substring, case-insensitive)"
// @Success      200  {array}   dto.ProductListingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/compatible [get]
func (h *SearchHandler) Compatible(c *fiber.Ctx) error {
	out, err := h.svc.CompatibleProducts(c.Query("model"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// splitCSV divide "HP,Epson" em fatia; vazio vira nil (filtro ausente).
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
