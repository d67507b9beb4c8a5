package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/application/payments"
)

// PaymentHandler inicia sesiones de pago en el proveedor externo.
type PaymentHandler struct {
	uc *payments.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateSession godoc
// @Summary      Crear sesión de pago para un pedido propio
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentSessionRequest  true  "Pedido a pagar"
// @Success      201   {object}  dto.PaymentSessionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/payments/session [post]
func (h *PaymentHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreatePaymentSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSession(c.Context(), GetUserID(c), in.OrderID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
