package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"group-analytics/repository"
	"group-analytics/service"
)

// GetAnalytics returns every read-model. Without filters the cached report is
// served; with group/from/to a report is built for that slice of the log.
// limit is rejected: aggregates always cover every matching record.
func (h *Handler) GetAnalytics(c *gin.Context) {
	if _, ok := c.GetQuery("limit"); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit is not supported for analytics"})
		return
	}
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.session.Analyze(c.Request.Context(), filter)
	if err != nil {
		h.respondUnavailable(c, filter, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) RefreshAnalytics(c *gin.Context) {
	snap, err := h.session.Refresh(c.Request.Context())
	if err != nil {
		h.respondUnavailable(c, repository.Filter{}, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// withReport serves one read-model out of the cached report.
func (h *Handler) withReport(pick func(*service.Snapshot) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := h.session.Report(c.Request.Context())
		if err != nil {
			h.respondUnavailable(c, repository.Filter{}, err)
			return
		}
		c.JSON(http.StatusOK, pick(snap))
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Stats })(c)
}

func (h *Handler) GetMembers(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Members })(c)
}

func (h *Handler) GetGroups(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Groups })(c)
}

func (h *Handler) GetComplaints(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Complaints })(c)
}

func (h *Handler) GetHubs(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Hubs })(c)
}

func (h *Handler) GetWeekly(c *gin.Context) {
	h.withReport(func(s *service.Snapshot) any { return s.Weekly })(c)
}
