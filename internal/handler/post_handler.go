package handler

import (
	"net/http"
	"strconv"

	"Tieba_Community/internal/middleware"
	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc        *service.PostService
	engagement *service.EngagementService
}

func NewPostHandler(svc *service.PostService, engagement *service.EngagementService) *PostHandler {
	return &PostHandler{svc: svc, engagement: engagement}
}

type postCreateReq struct {
	BarID   uint64 `json:"bar_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req postCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req.BarID, req.Title, req.Content, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

// Get returns the enriched post with its leading comments.
func (h *PostHandler) Get(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}
	detail, err := h.svc.GetPostDetail(c.Request.Context(), postID, middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "lookup failed"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *PostHandler) ListByBar(c *gin.Context) {
	barID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid bar id"})
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListPostsInBar(c.Request.Context(), barID, middleware.CallerID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": page, "size": size})
}

func (h *PostHandler) Latest(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListLatestPosts(c.Request.Context(), middleware.CallerID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) Search(c *gin.Context) {
	list, err := h.svc.SearchPosts(c.Request.Context(), c.Query("q"), middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID := middleware.CallerID(c)
	postID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}
	result, err := h.engagement.TogglePostLike(c.Request.Context(), userID, postID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "liked": result.Liked, "likes": result.Likes})
}
