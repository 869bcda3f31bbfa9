package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-analytics/models"
)

const defaultRecordLimit = 50

type importRequest struct {
	Records []models.GroupActivityRecord `json:"records" binding:"required,min=1,dive"`
}

func (h *Handler) GetRecords(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.Limit, err = parseLimit(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.Limit == 0 {
		filter.Limit = defaultRecordLimit
	}

	records, err := h.store.Fetch(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("fetch records", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "activity data unavailable"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ImportRecords appends records to the log. The cached report is not rebuilt;
// call the refresh endpoint afterwards.
func (h *Handler) ImportRecords(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i := range req.Records {
		req.Records[i].ID = ""
	}

	n, err := h.store.Import(c.Request.Context(), req.Records)
	if err != nil {
		h.log.Error("import records", zap.Error(err), zap.Int("records", len(req.Records)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store records"})
		return
	}
	h.log.Info("records imported", zap.Int("records", n))
	c.JSON(http.StatusCreated, gin.H{"imported": n})
}

func (h *Handler) GetLatestPerGroup(c *gin.Context) {
	latest, err := h.store.LatestPerGroup(c.Request.Context())
	if err != nil {
		h.log.Error("latest per group", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "activity data unavailable"})
		return
	}
	c.JSON(http.StatusOK, latest)
}
