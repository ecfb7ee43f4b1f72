package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistem-barang/internal/application/bom"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
)

// BOMHandler maneja las peticiones HTTP del bill of materials (protegido).
type BOMHandler struct {
	uc *bom.UseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *bom.UseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// AddComponent godoc
// @Summary      Agregar componente al BOM de un producto terminado
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBOMComponentRequest  true  "finished_good_id, component_id, component_type, quantity, unit"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bom [post]
func (h *BOMHandler) AddComponent(c *fiber.Ctx) error {
	var in dto.AddBOMComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddComponent(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "component_type debe ser material o semi_finished"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListComponents godoc
// @Summary      Listar el BOM de un producto terminado con nombres resueltos
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        finished_good_id  path  string  true  "ID del producto terminado"
// @Success      200  {array}  dto.BOMComponentResponse
// @Router       /api/bom/{finished_good_id} [get]
func (h *BOMHandler) ListComponents(c *fiber.Ctx) error {
	finishedGoodID := c.Params("finished_good_id")
	out, err := h.uc.ListComponents(finishedGoodID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "finished_good_id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
