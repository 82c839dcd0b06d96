package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/usecase"
)

// PrinterHandler maneja modelos de impressora e vínculos de compatibilidade
// (tudo admin).
type PrinterHandler struct {
	uc *usecase.PrinterUseCase
}

// NewPrinterHandler constrói o handler.
func NewPrinterHandler(uc *usecase.PrinterUseCase) *PrinterHandler {
	return &PrinterHandler{uc: uc}
}

// List godoc
// @Summary      Listar modelos de impressora
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PrinterResponse
// @Router       /api/admin/printers [get]
func (h *PrinterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar modelo de impressora
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrinterRequest  true  "Dados do modelo"
// @Success      201  {object}  dto.PrinterResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/printers [post]
func (h *PrinterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrinterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ModelName == "" || in.BrandID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "model_name e brand_id são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Link godoc
// @Summary      Vincular produto compatível à impressora
// @Tags         admin
// @Security     Bearer
// @Param        id           path  string  true  "ID da impressora"
// @Param        cartridgeId  path  string  true  "ID do produto (cartucho/toner)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/printers/{id}/compatibilities/{cartridgeId} [post]
func (h *PrinterHandler) Link(c *fiber.Ctx) error {
	if err := h.uc.Link(c.Params("id"), c.Params("cartridgeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unlink godoc
// @Summary      Remover vínculo de compatibilidade
// @Tags         admin
// @Security     Bearer
// @Param        id           path  string  true  "ID da impressora"
// @Param        cartridgeId  path  string  true  "ID do produto"
// @Success      204
// @Router       /api/admin/printers/{id}/compatibilities/{cartridgeId} [delete]
func (h *PrinterHandler) Unlink(c *fiber.Ctx) error {
	if err := h.uc.Unlink(c.Params("id"), c.Params("cartridgeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Excluir impressora (limpa compatibilidades na mesma transação)
// @Tags         admin
// @Security     Bearer
// @Param        id  path  string  true  "ID da impressora"
// @Success      204
// @Router       /api/admin/printers/{id} [delete]
func (h *PrinterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
