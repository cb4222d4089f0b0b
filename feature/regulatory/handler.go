package regulatory

import (
	"encoding/json"
	"errors"
	"fmt"

	"onboarding-dashboard/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the regulatory due diligence process.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the regulatory page and API routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/regulatory", h.HandlePage)

	group := app.Group("/api/regulatory")
	group.Post("/trigger", h.HandleTrigger)
	group.Get("/status/:id", h.HandleStatus)
	group.Get("/list", h.HandleList)
}

// HandlePage renders the regulatory due diligence page.
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	return c.Render("regulatory", fiber.Map{
		"Title": "Regulatory Due Diligence",
	})
}

// HandleTrigger runs a regulatory classification for an upstream client.
// @Summary Trigger Regulatory Classification
// @Description Validates the client payload, runs high-level, document and data quality checks and stores the result.
// @Tags regulatory
// @Accept json
// @Produce json
// @Param client body regulatory.ClientData true "Client data"
// @Success 200 {object} regulatory.TriggerResponse "Classification started"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/regulatory/trigger [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Request body must be a JSON object"})
	}

	client, err := h.service.ParseClient(body)
	if err != nil {
		l.Warn("Rejected regulatory trigger", zap.Error(err))
		if errors.Is(err, ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cl, err := h.service.Trigger(c.Context(), client)
	if err != nil {
		l.Error("Regulatory classification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(TriggerResponse{
		Status:           "success",
		ClassificationID: cl.ClassificationID,
		OverallStatus:    cl.Status,
		Progress:         cl.OverallProgress,
		Message:          fmt.Sprintf("Regulatory classification initiated for client %s", client.ClientID),
	})
}

// HandleStatus returns the detailed classification.
// @Summary Get Classification Status
// @Description Returns all checks of a regulatory classification.
// @Tags regulatory
// @Produce json
// @Param id path string true "Classification ID"
// @Success 200 {object} regulatory.Classification "Classification detail"
// @Failure 404 {object} map[string]string "Classification not found"
// @Router /api/regulatory/status/{id} [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	cl, err := h.service.Status(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Classification not found"})
	}
	return c.JSON(cl)
}

// HandleList lists all classifications.
// @Summary List Classifications
// @Description Lists every classification run since the server started.
// @Tags regulatory
// @Produce json
// @Success 200 {array} regulatory.Summary "Classifications"
// @Router /api/regulatory/list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
