package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/usecase"
)

// ActivityHandler expone el registro de actividad, solo lectura.
type ActivityHandler struct {
	recorder *usecase.ActivityRecorder
}

func NewActivityHandler(recorder *usecase.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{recorder: recorder}
}

// ListRecent godoc
// @Summary      Actividad reciente
// @Tags         activity
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  entity.ActivityLog
// @Router       /api/activity [get]
func (h *ActivityHandler) ListRecent(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	entries, err := h.recorder.ListRecent(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
