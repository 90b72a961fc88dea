package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	kbSource string
	plansAPI string
}

func NewHealthHandler(kbSource, plansAPI string) *HealthHandler {
	return &HealthHandler{kbSource: kbSource, plansAPI: plansAPI}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   "assistant-api",
		"kb_source": h.kbSource,
		"plans_api": h.plansAPI,
	})
}
