package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
)

type KBHandler struct {
	knowledgeBase *kb.KnowledgeBase
}

func NewKBHandler(k *kb.KnowledgeBase) *KBHandler {
	return &KBHandler{knowledgeBase: k}
}

// GetKnowledgeBase godoc
// @Summary Get the loaded knowledge base
// @Description Returns the read-only company profile, services, pricing and FAQs the assistant answers from
// @Tags KnowledgeBase
// @Produce json
// @Success 200 {object} kb.KnowledgeBase
// @Router /knowledge-base [get]
func (h *KBHandler) GetKnowledgeBase(c *fiber.Ctx) error {
	return c.JSON(h.knowledgeBase)
}
