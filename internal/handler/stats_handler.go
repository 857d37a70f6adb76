package handler

import (
	"net/http"

	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	query *service.QueryService
}

func NewStatsHandler(query *service.QueryService) *StatsHandler {
	return &StatsHandler{query: query}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.query.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "stats failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
