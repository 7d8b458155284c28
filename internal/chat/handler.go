package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"VillionChat/internal/utils"
	"VillionChat/internal/websocket"
)

type Handler struct {
	svc *Service
	hub Notifier
}

func NewHandler(svc *Service, hub Notifier) *Handler {
	return &Handler{svc: svc, hub: hub}
}

// HandleEvent websocket 入口：前端经 /ws 发事件，结果一律异步回推，
// 失败只回发送方一条 error 事件。挂到 hub.OnIncoming 上。
func (h *Handler) HandleEvent(msg websocket.IncomingMessage) {
	switch msg.Event {
	case "roomMessage":
		var rm RoomMessage
		if err := json.Unmarshal(msg.Data, &rm); err != nil {
			h.sendError(msg.From, "malformed roomMessage")
			return
		}
		if err := h.svc.BroadcastRoomMessage(&rm); err != nil {
			h.sendError(msg.From, err.Error())
		}

	case "randomMatch":
		var req MatchRequest
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				h.sendError(msg.From, "malformed randomMatch")
				return
			}
		}
		if req.UserID == 0 {
			req.UserID = msg.From
		}
		if _, _, err := h.svc.RequestMatch(context.Background(), req.UserID); err != nil {
			h.sendError(msg.From, err.Error())
		}

	default:
		utils.Info.Printf("unknown ws event %q from %d", msg.Event, msg.From)
	}
}

func (h *Handler) sendError(userID int64, message string) {
	h.hub.SendToUser(userID, websocket.OutgoingMessage{
		Event: "error",
		Data:  gin.H{"message": message},
	})
}

// POST /match/random
// 同步触发面：排队返回 {queued:true}，成功返回配对结果。
// 通知仍会照常走双方的专属通道。
func (h *Handler) Random(c *gin.Context) {
	userID := c.GetInt64("userId") // JWT middleware 注入

	pairing, queued, err := h.svc.RequestMatch(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrMissingUserID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if queued {
		c.JSON(http.StatusOK, gin.H{"queued": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"queued":    false,
		"partnerId": pairing.PartnerID,
		"roomId":    pairing.RoomID,
	})
}

// GET /match/waiting
func (h *Handler) Waiting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"waiting": h.svc.WaitingCount()})
}
