package room

import (
	"errors"
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

// POST /rooms
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.svc.Create(c.Request.Context(), &Room{
		Name:        req.Name,
		Description: req.Description,
		MaxCapacity: req.MaxCapacity,
		CreatedBy:   req.UserID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GET /rooms
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /rooms/:roomId
func (h *Handler) Get(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}
	r, err := h.svc.Get(c.Request.Context(), roomID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// POST /rooms/:roomId/join
func (h *Handler) Join(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}

	r, err := h.svc.Join(c.Request.Context(), roomID, req.UserID)
	h.respond(c, r, err)
}

// POST /rooms/:roomId/leave
func (h *Handler) Leave(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}

	r, err := h.svc.Leave(c.Request.Context(), roomID, req.UserID)
	h.respond(c, r, err)
}

func (h *Handler) roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("roomId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roomId"})
		return 0, false
	}
	return id, true
}

// 错误分类映射：参数 400 / 不存在 404 / 满员 409
func (h *Handler) respond(c *gin.Context, r *Room, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, ErrRoomFull):
		c.JSON(http.StatusConflict, gin.H{"error": "room is full"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, r)
	}
}
