package handler

import (
	"net/http"
	"strconv"

	"Tieba_Community/internal/middleware"
	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type BarHandler struct {
	svc        *service.BarService
	engagement *service.EngagementService
	query      *service.QueryService
}

func NewBarHandler(svc *service.BarService, engagement *service.EngagementService, query *service.QueryService) *BarHandler {
	return &BarHandler{svc: svc, engagement: engagement, query: query}
}

type barCreateReq struct {
	Name string `json:"name" binding:"required"`
}

func (h *BarHandler) Create(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req barCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	bar, err := h.svc.CreateBar(c.Request.Context(), req.Name, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": bar.ID, "name": bar.Name})
}

func (h *BarHandler) GetByName(c *gin.Context) {
	bar, err := h.svc.GetBarByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "lookup failed"})
		return
	}
	if bar == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "bar not found"})
		return
	}
	c.JSON(http.StatusOK, bar)
}

func (h *BarHandler) Hot(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	bars, err := h.query.GetHotBars(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": bars})
}

func (h *BarHandler) Followed(c *gin.Context) {
	userID := middleware.CallerID(c)
	bars, err := h.query.GetFollowedBars(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": bars})
}

func (h *BarHandler) Follow(c *gin.Context) {
	userID := middleware.CallerID(c)
	barID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid bar id"})
		return
	}
	changed, err := h.engagement.FollowBar(c.Request.Context(), userID, barID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": changed})
}

func (h *BarHandler) Unfollow(c *gin.Context) {
	userID := middleware.CallerID(c)
	barID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid bar id"})
		return
	}
	changed, err := h.engagement.UnfollowBar(c.Request.Context(), userID, barID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": changed})
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
