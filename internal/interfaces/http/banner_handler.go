package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/usecase"
)

// BannerHandler maneja o banner do site: leitura pública e upsert admin.
type BannerHandler struct {
	uc *usecase.StoreConfigUseCase
}

// NewBannerHandler constrói o handler.
func NewBannerHandler(uc *usecase.StoreConfigUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// Get godoc
// @Summary      Banner público do site (vazio quando inativo)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.BannerResponse
// @Router       /api/banner [get]
func (h *BannerHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Banner()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Definir banner do site
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBannerRequest  true  "Banner"
// @Success      200  {object}  dto.BannerResponse
// @Router       /api/admin/banner [put]
func (h *BannerHandler) Set(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetBanner(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
