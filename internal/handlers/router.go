package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/services"
)

type AppOptions struct {
	AllowOrigins  string
	AccessLogging bool
	Logger        *zap.Logger
}

// NewApp builds the fiber app with middleware and every route mounted.
func NewApp(chatbot services.ChatbotService, opts AppOptions) *fiber.App {
	if opts.AllowOrigins == "" {
		opts.AllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      "HR Chatbot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: ErrorHandler(opts.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLogging {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	chatHandler := NewChatHandler(chatbot, opts.Logger)
	employeeHandler := NewEmployeeHandler(chatbot)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the HR Chatbot API!",
			"endpoints": []string{
				"POST /chat",
				"GET /employees/search?query=",
				"GET /api/v1/health",
			},
		})
	})
	app.Post("/chat", chatHandler.HandleChat)
	app.Get("/employees/search", employeeHandler.HandleSearch)

	api := app.Group("/api/v1")
	api.Get("/health", employeeHandler.HandleHealth)

	return app
}
