package integrity

import (
	"errors"

	"onboarding-dashboard/core/logger"
	"onboarding-dashboard/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/assets", h.HandleAssetsCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the dashboard templates and static assets, and the documents bucket when storage is configured.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.Report(c.Context()))
}

// HandleAssetsCheck checks the templates and static files.
// @Summary Check Assets
// @Description Lists required templates and static files that are missing or empty.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Assets Report"
// @Router /integrity/assets [get]
func (h *Handler) HandleAssetsCheck(c *fiber.Ctx) error {
	missing := h.service.CheckAssets()
	if len(missing) > 0 {
		logger.WithRayID(h.service.logger, c).Warn("Missing assets detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleStorageCheck checks and optionally fixes the documents bucket.
// @Summary Check Storage
// @Description Checks that the documents bucket and its folders exist. Optionally creates what is missing.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	if !h.service.StorageEnabled() {
		return c.JSON(fiber.Map{"status": "skipped"})
	}

	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStorage(c.Context())
	if err != nil {
		if !fix || !errors.Is(err, checks.ErrBucketMissing) {
			l.Error("Storage check failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// Bucket itself is missing; create it along with every folder.
		missing = checks.RequiredFolders
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix storage")
			if err := h.service.FixStorage(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
