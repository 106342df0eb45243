package check

import (
	"mnp-alarm/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation checks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/check", h.HandleRun)
	app.Get("/check/reference", h.HandleReference)
}

// HandleRun runs one reconciliation pass.
// @Summary Run Reconciliation
// @Description Looks up every reference number, diffs against the reference set and sends one SMS alert if any group drifted.
// @Tags check
// @Produce json
// @Param dry_run query boolean false "Build the alert without sending it"
// @Success 200 {object} reconcile.Report "Run Report"
// @Failure 500 {object} map[string]string "Setup Error"
// @Router /check [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	dryRun := c.QueryBool("dry_run", false)
	l.Info("Triggering reconciliation", zap.Bool("dry_run", dryRun))

	report, err := h.service.Run(c.UserContext(), dryRun)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleReference returns the size of each reference group.
// @Summary Reference Set Summary
// @Description Lists the groups of the configured reference set with their number counts.
// @Tags check
// @Produce json
// @Success 200 {object} map[string][]reference.GroupSummary "Groups"
// @Failure 500 {object} map[string]string "Setup Error"
// @Router /check/reference [get]
func (h *Handler) HandleReference(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	groups, err := h.service.Reference(c.UserContext())
	if err != nil {
		l.Error("Reference load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"groups": groups})
}
