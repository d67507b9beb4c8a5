package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	apporders "github.com/jhoicas/delivery-api/internal/application/orders"
	"github.com/jhoicas/delivery-api/internal/domain/order"
)

// OrderHandler maneja el ciclo de vida de los pedidos (protegido).
type OrderHandler struct {
	createUC *apporders.CreateOrderUseCase
	statusUC *apporders.UpdateStatusUseCase
	queryUC  *apporders.OrderQueryUseCase
	receipt  *apporders.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	createUC *apporders.CreateOrderUseCase,
	statusUC *apporders.UpdateStatusUseCase,
	queryUC *apporders.OrderQueryUseCase,
	receipt *apporders.ReceiptUseCase,
) *OrderHandler {
	return &OrderHandler{createUC: createUC, statusUC: statusUC, queryUC: queryUC, receipt: receipt}
}

// actorFrom arma el actor de autorización con los claims del token.
func actorFrom(c *fiber.Ctx) order.Actor {
	return order.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// Create godoc
// @Summary      Materializar el carrito en un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Carrito y datos de entrega"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Listar mis pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.queryUC.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los pedidos (vendedores y administradores)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/seller/orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.queryUC.ListAll(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un pedido con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(c.Context(), actorFrom(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar el estado de un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.statusUC.UpdateStatus(c.Context(), actorFrom(c), id, in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar el recibo del pedido en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.receipt.Receipt(c.Context(), actorFrom(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
