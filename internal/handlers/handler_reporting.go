package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for periodic income/expense
// reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlyReport)
		reports.GET("/daily", h.dailyReport)
	}
}

// monthlyReport godoc
// @Summary Monthly income/expense report
// @Description Aggregates income, expense and net totals for a calendar month across all accounts. Year and month default to the current date.
// @Tags reports
// @Produce  json
// @Param   year query int false "Calendar year" example(2025)
// @Param   month query int false "Calendar month (1-12)" example(6)
// @Param   includeTransactions query bool false "Include matching transactions in the response" default(false)
// @Success 200 {object} dto.PeriodReportResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for monthlyReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	if params.Year == 0 {
		params.Year = now.Year()
	}
	if params.Month == 0 {
		params.Month = int(now.Month())
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), params.Year, params.Month, params.IncludeTransactions)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error building monthly report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report))
}

// dailyReport godoc
// @Summary Daily income/expense report
// @Description Aggregates income, expense and net totals for a single calendar day across all accounts. The day must exist in the requested month.
// @Tags reports
// @Produce  json
// @Param   year query int false "Calendar year" example(2025)
// @Param   month query int false "Calendar month (1-12)" example(6)
// @Param   day query int true "Day of month" example(15)
// @Param   includeTransactions query bool false "Include matching transactions in the response" default(false)
// @Success 200 {object} dto.PeriodReportResponse
// @Failure 400 {object} map[string]string "Invalid period or day out of range for the month"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/daily [get]
func (h *reportingHandler) dailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DailyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for dailyReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	if params.Year == 0 {
		params.Year = now.Year()
	}
	if params.Month == 0 {
		params.Month = int(now.Month())
	}

	report, err := h.reportingService.DailyReport(c.Request.Context(), params.Year, params.Month, params.Day, params.IncludeTransactions)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error building daily report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build daily report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report))
}
