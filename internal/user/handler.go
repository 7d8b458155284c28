package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"VillionChat/internal/middleware"
)

// OnlineLister 在线用户来源（presence 包的 Redis 实现）
type OnlineLister interface {
	Online(ctx context.Context) ([]int64, error)
}

type Handler struct {
	repo      Repository
	jwtSecret []byte
	presence  OnlineLister
}

func NewHandler(repo Repository, jwtSecret []byte, presence OnlineLister) *Handler {
	return &Handler{repo: repo, jwtSecret: jwtSecret, presence: presence}
}

// POST /users/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if !ValidUsername(req.Username) || !ValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username or password"})
		return
	}

	// 用户名唯一性
	if _, err := h.repo.FindByUsername(c.Request.Context(), req.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
		return
	} else if !errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	u := &User{
		Username:  req.Username,
		Password:  req.Password,
		AvatarUrl: req.AvatarUrl,
		Gender:    req.Gender,
		Age:       req.Age,
		Region:    req.Region,
		Signature: req.Signature,
	}
	if strings.TrimSpace(u.AvatarUrl) == "" {
		u.AvatarUrl = fmt.Sprintf("https://picsum.photos/200/200?random=%d", time.Now().UnixMilli()%100)
	}

	saved, err := h.repo.Create(c.Request.Context(), u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// POST /users/login
// 密码按原样比对；成功返回用户信息 + JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if !ValidUsername(req.Username) || !ValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username or password"})
		return
	}

	u, err := h.repo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil || u.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
		return
	}

	token, err := middleware.GenerateToken(h.jwtSecret, u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// GET /users/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	u, err := h.repo.FindByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /users/username/:username
func (h *Handler) GetByUsername(c *gin.Context) {
	u, err := h.repo.FindByUsername(c.Request.Context(), c.Param("username"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /users
func (h *Handler) List(c *gin.Context) {
	users, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/online
func (h *Handler) ListOnline(c *gin.Context) {
	ids, err := h.presence.Online(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": ids})
}

// PUT /users/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	dbUser, err := h.repo.FindByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 改名需要重新校验合法性与唯一性（排除自己）
	newName := strings.TrimSpace(req.Username)
	if newName != "" && newName != dbUser.Username {
		if !ValidUsername(newName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username"})
			return
		}
		if other, err := h.repo.FindByUsername(c.Request.Context(), newName); err == nil && other.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
			return
		}
	}

	applyUpdate(dbUser, &req)
	updated, err := h.repo.Save(c.Request.Context(), dbUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /users/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
