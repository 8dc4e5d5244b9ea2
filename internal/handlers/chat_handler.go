package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/models"
	"alfredoptarigan/hr-chatbot/internal/services"
)

type ChatHandler struct {
	chatbot services.ChatbotService
	log     *zap.Logger
}

func NewChatHandler(chatbot services.ChatbotService, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{
		chatbot: chatbot,
		log:     log,
	}
}

// HandleChat handles POST /chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	narrative, err := h.chatbot.Chat(c.UserContext(), req.Query)
	if err != nil {
		h.log.Error("chat failed",
			zap.String("request_id", requestID(c)),
			zap.String("query", req.Query),
			zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.ChatResponse{Response: narrative})
}
