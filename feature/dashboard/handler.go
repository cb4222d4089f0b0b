package dashboard

import (
	"onboarding-dashboard/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Title is shown in the page header.
const Title = "Client Onboarding Dashboard"

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/api/dashboard", h.HandleData)
}

// HandleIndex renders the dashboard page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	err := c.Render("index", fiber.Map{
		"Title": Title,
		"Data":  h.service.Overview(),
	})
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Dashboard render failed", zap.Error(err))
	}
	return err
}

// HandleData returns the dashboard data as JSON.
// @Summary Get Dashboard Data
// @Description Returns stage-wise onboarding counts, totals and open action items.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Data "Dashboard data"
// @Router /api/dashboard [get]
func (h *Handler) HandleData(c *fiber.Ctx) error {
	return c.JSON(h.service.Overview())
}
