package handler

import (
	"log/slog"
	"net/http"

	"jobtrack/internal/domain/models"
	"jobtrack/internal/domain/services"
	"jobtrack/internal/httputil"
	"jobtrack/internal/service/analytics"
)

// AnalyticsHandler derives dashboard statistics from the job collection
type AnalyticsHandler struct {
	jobService services.JobService
	logger     *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(jobService services.JobService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		jobService: jobService,
		logger:     logger,
	}
}

// monthBucket pairs a month label with its count for chart rendering
type monthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// analyticsResponse is the full dashboard payload
type analyticsResponse struct {
	Status  map[models.Status]int `json:"status"`
	Monthly []monthBucket         `json:"monthly"`
	Trend   []monthBucket         `json:"trend"`
}

// GetAnalytics recomputes all aggregations over a fresh snapshot
// GET /api/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	jobsList, err := h.jobService.ListJobs(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	monthly := analytics.MonthlyCounts(jobsList)
	trend := analytics.CumulativeTrend(monthly)

	resp := analyticsResponse{
		Status:  analytics.StatusCounts(jobsList),
		Monthly: make([]monthBucket, 12),
		Trend:   make([]monthBucket, 12),
	}
	for i, name := range analytics.MonthNames {
		resp.Monthly[i] = monthBucket{Month: name, Count: monthly[i]}
		resp.Trend[i] = monthBucket{Month: name, Count: trend[i]}
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}
