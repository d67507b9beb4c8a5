package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/application/usecase"
)

// UserHandler maneja la gestión de usuarios y el listado de vendedores.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListSellers godoc
// @Summary      Listar vendedores activos para el checkout
// @Tags         sellers
// @Produce      json
// @Success      200  {array}  dto.SellerResponse
// @Router       /api/sellers [get]
func (h *UserHandler) ListSellers(c *fiber.Ctx) error {
	out, err := h.uc.ListSellers(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios (administración)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar rol o estado de un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Rol y/o estado"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un usuario
// @Tags         admin
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSellersWithOrderCount godoc
// @Summary      Listar vendedores con su carga de pedidos (administración)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SellerSummaryResponse
// @Router       /api/admin/sellers [get]
func (h *UserHandler) ListSellersWithOrderCount(c *fiber.Ctx) error {
	out, err := h.uc.ListSellersWithOrderCount(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
