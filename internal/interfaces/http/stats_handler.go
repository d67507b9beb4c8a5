package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/delivery-api/internal/application/usecase"
)

// StatsHandler expone los agregados del tablero de administración.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// AdminStats godoc
// @Summary      Agregados del tablero: contadores, ingresos y pedidos recientes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	out, err := h.uc.AdminStats(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
