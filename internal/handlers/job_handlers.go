package handlers

import (
	"net/http"

	"medstock/internal/common"
	"medstock/internal/jobs"
	"medstock/internal/jobs/background"

	"github.com/labstack/echo/v4"
)

// JobHandlers exposes background job status and manual triggers.
type JobHandlers struct {
	scheduler    *background.JobScheduler
	stockMonitor *jobs.StockMonitor
}

func NewJobHandlers(scheduler *background.JobScheduler, stockMonitor *jobs.StockMonitor) *JobHandlers {
	return &JobHandlers{
		scheduler:    scheduler,
		stockMonitor: stockMonitor,
	}
}

// GetJobStatus returns the registered background jobs
func (h *JobHandlers) GetJobStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.scheduler.GetJobStatus())
}

// TriggerStockMonitor runs a monitoring sweep immediately instead of
// waiting for the next scheduled run.
func (h *JobHandlers) TriggerStockMonitor(c echo.Context) error {
	if err := h.stockMonitor.RunOnce(c.Request().Context()); err != nil {
		return common.SendServerError(c, "Failed to run stock monitor")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Stock monitoring sweep completed",
	})
}
