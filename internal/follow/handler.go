package follow

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return 0, false
	}
	return id, true
}

// POST /follows/:targetId?userId=
func (h *Handler) Follow(c *gin.Context) {
	targetID, ok := parseID(c, "targetId")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	err := h.svc.Follow(c.Request.Context(), userID, targetID)
	switch {
	case errors.Is(err, ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("followed user %d", targetID)})
	}
}

// DELETE /follows/:targetId?userId=
func (h *Handler) Unfollow(c *gin.Context) {
	targetID, ok := parseID(c, "targetId")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("unfollowed user %d", targetID)})
}

// GET /follows/following?userId=
func (h *Handler) Following(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	users, err := h.svc.Following(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /follows/followers?userId=
func (h *Handler) Followers(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	users, err := h.svc.Followers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
