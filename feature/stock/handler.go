package stock

import (
	"stock-regul/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stock reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stock")
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/report", h.HandleGetReport)
	group.Get("/actions", h.HandleGetActions)
}

// HandleReconcile triggers a reconciliation run against the staged snapshots.
// @Summary Run Reconciliation
// @Description Run the full stock reconciliation pipeline and upload the run workbook.
// @Tags stock
// @Accept json
// @Produce json
// @Param skip_upload query bool false "Compute the report without uploading the workbook"
// @Success 200 {object} RunReport "Run Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := RunOptions{SkipUpload: c.QueryBool("skip_upload")}

	report, err := h.service.Run(c.Context(), opts)
	if err != nil {
		l.Error("Reconciliation run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleGetReport returns the latest run report.
// @Summary Get Latest Report
// @Description Get the report of the most recent reconciliation run.
// @Tags stock
// @Accept json
// @Produce json
// @Success 200 {object} RunReport "Run Report"
// @Failure 404 {object} map[string]string "No Run Yet"
// @Router /stock/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	report := h.service.Latest()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no reconciliation run has completed yet",
		})
	}
	return c.JSON(report)
}

// HandleGetActions returns the corrective actions of the latest run.
// @Summary Get Corrective Actions
// @Description Get the M3 corrective actions produced by the most recent run.
// @Tags stock
// @Accept json
// @Produce json
// @Success 200 {array} models.Action "Corrective Actions"
// @Failure 404 {object} map[string]string "No Run Yet"
// @Router /stock/actions [get]
func (h *Handler) HandleGetActions(c *fiber.Ctx) error {
	report := h.service.Latest()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no reconciliation run has completed yet",
		})
	}
	return c.JSON(report.Actions)
}
