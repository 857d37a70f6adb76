package handler

import (
	"errors"
	"net/http"

	"Tieba_Community/internal/middleware"
	"Tieba_Community/internal/pkg"
	"Tieba_Community/internal/repository/redis"
	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc      *service.AuthService
	sessions *redis.SessionRepository
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{svc: svc, sessions: &redis.SessionRepository{}}
}

type credentialsReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	id, err := h.svc.Register(c.Request.Context(), req.Username, req.Password, "")
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	id, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}
	if id == 0 {
		// Wrong name and wrong password look the same on purpose.
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid username or password"})
		return
	}

	pair, err := pkg.GeneratePair(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}
	if err := h.sessions.Save(c.Request.Context(), id, pair.AccessToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id, "access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID := middleware.CallerID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	pair, err := pkg.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}

	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "refresh failed"})
		return
	}
	if err := h.sessions.Save(c.Request.Context(), claims.UserID, pair.AccessToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// Me returns the caller's identity row.
func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.CallerID(c)
	user, err := h.svc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "lookup failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "kind": user.Kind, "exp": user.Exp})
}

// GetUser is the public identity lookup by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}
	user, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "lookup failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "kind": user.Kind, "exp": user.Exp})
}
