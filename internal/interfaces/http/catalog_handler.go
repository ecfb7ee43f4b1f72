package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistem-barang/internal/application/catalog"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP de los tres catálogos de ítems
// (protegido). El mismo handler sirve materiales, semielaborados y productos
// terminados: el kind se fija al registrar la ruta.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems de un catálogo ordenados por code
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/materials [get]
func (h *CatalogHandler) List(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.List(kind)
		if err != nil {
			return mapCatalogError(c, err)
		}
		return c.JSON(out)
	}
}

// Get godoc
// @Summary      Obtener un ítem por id
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *CatalogHandler) Get(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.GetByID(kind, c.Params("id"))
		if err != nil {
			return mapCatalogError(c, err)
		}
		if out == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.JSON(out)
	}
}

// Create godoc
// @Summary      Crear ítem en un catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *CatalogHandler) Create(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateItemRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.Create(kind, in)
		if err != nil {
			return mapCatalogError(c, err)
		}
		return c.JSON(dto.IDResponse{ID: out.ID})
	}
}

// Update godoc
// @Summary      Editar campos de un ítem (nunca current_stock)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos editables"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *CatalogHandler) Update(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		}
		var in dto.UpdateItemRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.Update(kind, id, in)
		if err != nil {
			return mapCatalogError(c, err)
		}
		return c.JSON(out)
	}
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrDuplicateCode):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "el código ya existe en este catálogo"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
