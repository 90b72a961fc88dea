package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/services"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
	metrics     *metrics.Metrics
}

func NewChatHandler(chatService *services.ChatService, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		metrics:     m,
	}
}

// Chat godoc
// @Summary Ask the support assistant
// @Description Answers the most recent user message using the company knowledge base. Pricing questions may use live plans from the plan service.
// @Tags Chat
// @Accept json
// @Produce json
// @Param data body models.ChatRequest true "Conversation so far"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	resp, reply, err := h.chatService.HandleChat(c.UserContext(), c.Body())
	if err != nil {
		return h.writeError(c, err)
	}

	fields := map[string]interface{}{
		"request_id": requestID(c),
		"intent":     reply.Intent.String(),
	}
	if reply.PlanSource != "" {
		fields["plan_source"] = reply.PlanSource
	}
	utils.LogInfo("💬 Chat reply sent", fields)

	h.metrics.ObserveChatRequest(strconv.Itoa(fiber.StatusOK))
	return c.JSON(resp)
}

func (h *ChatHandler) writeError(c *fiber.Ctx, err error) error {
	se := services.AsServiceError(err)

	status := fiber.StatusInternalServerError
	if se.Kind == services.KindInvalidInput {
		status = fiber.StatusBadRequest
	} else {
		utils.LogError("❌ Chat request failed", err, map[string]interface{}{
			"request_id": requestID(c),
			"path":       c.Path(),
		})
	}

	h.metrics.ObserveChatRequest(strconv.Itoa(status))
	return c.Status(status).JSON(models.ErrorResponse{Error: se.Message})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
