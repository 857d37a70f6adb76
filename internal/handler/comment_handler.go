package handler

import (
	"net/http"
	"strconv"

	"Tieba_Community/internal/middleware"
	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc        *service.CommentService
	engagement *service.EngagementService
}

func NewCommentHandler(svc *service.CommentService, engagement *service.EngagementService) *CommentHandler {
	return &CommentHandler{svc: svc, engagement: engagement}
}

type commentCreateReq struct {
	PostID  uint64  `json:"post_id" binding:"required"`
	Content string  `json:"content" binding:"required"`
	ReplyTo *uint64 `json:"reply_to"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req commentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), req.PostID, req.Content, userID, req.ReplyTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": comment.ID})
}

// List pages a thread oldest first.
func (h *CommentHandler) List(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListCommentsInPost(c.Request.Context(), postID, middleware.CallerID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": page, "size": size})
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID := middleware.CallerID(c)
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid comment id"})
		return
	}
	result, err := h.engagement.ToggleCommentLike(c.Request.Context(), userID, commentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "liked": result.Liked, "likes": result.Likes})
}
