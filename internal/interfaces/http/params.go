package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID lee un parámetro de ruta numérico. Devuelve 0 si falta o no es válido.
func parseID(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// actingUser identifica al usuario que realiza la operación, declarado en el
// header X-User. La autenticación queda fuera del API; el valor se usa solo
// para el registro de actividad.
func actingUser(c *fiber.Ctx) string {
	return c.Get("X-User")
}
