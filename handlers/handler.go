package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-analytics/models"
	"group-analytics/repository"
	"group-analytics/service"
)

type RecordStore interface {
	Fetch(ctx context.Context, f repository.Filter) ([]models.GroupActivityRecord, error)
	Import(ctx context.Context, records []models.GroupActivityRecord) (int, error)
	LatestPerGroup(ctx context.Context) ([]models.GroupSnapshot, error)
}

type Handler struct {
	session *service.Session
	store   RecordStore
	log     *zap.Logger
}

func NewHandler(session *service.Session, store RecordStore, log *zap.Logger) *Handler {
	return &Handler{session: session, store: store, log: log}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/analytics", h.GetAnalytics)
		api.POST("/analytics/refresh", h.RefreshAnalytics)

		api.GET("/stats", h.GetStats)
		api.GET("/members", h.GetMembers)
		api.GET("/groups", h.GetGroups)
		api.GET("/groups/latest", h.GetLatestPerGroup)
		api.GET("/complaints", h.GetComplaints)
		api.GET("/hubs", h.GetHubs)
		api.GET("/weekly", h.GetWeekly)

		api.GET("/records", h.GetRecords)
		api.POST("/records", h.ImportRecords)
	}
	return r
}

// parseFilter reads the group, from and to query parameters.
func parseFilter(c *gin.Context) (repository.Filter, error) {
	f := repository.Filter{
		GroupName: c.Query("group"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
	dates := []struct{ name, value string }{{"from", f.From}, {"to", f.To}}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return repository.Filter{}, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", d.name, d.value)
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return repository.Filter{}, errors.New("from must not be after to")
	}
	return f, nil
}

// parseLimit reads the limit query parameter; 0 when absent.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}

// respondUnavailable reports a failed fetch. The last good report is attached
// only for unfiltered requests, since it covers the whole log.
func (h *Handler) respondUnavailable(c *gin.Context, f repository.Filter, err error) {
	h.log.Warn("analytics unavailable", zap.Error(err), zap.Bool("filtered", !f.IsZero()))
	body := gin.H{"error": "activity data unavailable"}
	if f.IsZero() {
		if stale, ok := h.session.Stale(); ok {
			body["report"] = stale
		}
	}
	c.JSON(http.StatusServiceUnavailable, body)
}
