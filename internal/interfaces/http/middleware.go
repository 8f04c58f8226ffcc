package http

import "github.com/gofiber/fiber/v2"

// NoCache desactiva el caché del cliente en los endpoints de consulta: el
// estado de las tareas cambia entre sondeos del front y una respuesta rancia
// haría reanudar sobre datos viejos.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, max-age=0")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
