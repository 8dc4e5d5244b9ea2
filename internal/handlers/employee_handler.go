package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-chatbot/internal/models"
	"alfredoptarigan/hr-chatbot/internal/services"
)

type EmployeeHandler struct {
	chatbot services.ChatbotService
}

func NewEmployeeHandler(chatbot services.ChatbotService) *EmployeeHandler {
	return &EmployeeHandler{chatbot: chatbot}
}

// HandleSearch handles GET /employees/search?query=
func (h *EmployeeHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("query")
	return c.JSON(models.SearchResponse{Results: h.chatbot.SearchEmployees(query)})
}

// HandleHealth handles GET /api/v1/health
func (h *EmployeeHandler) HandleHealth(c *fiber.Ctx) error {
	stats := h.chatbot.Stats()
	return c.JSON(models.HealthResponse{
		Status:     "healthy",
		CorpusSize: stats.CorpusSize,
		Encoder:    stats.Encoder,
		Index:      stats.Index,
	})
}
