package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"VillionChat/internal/room"
	"VillionChat/internal/user"
	"VillionChat/internal/utils"
	"VillionChat/internal/websocket"
)

var (
	ErrMissingUserID = errors.New("userId is required")
	ErrEmptyContent  = errors.New("message content is empty")
)

// Notifier hub 的通知面：topic 广播 + 用户专属通道单播
type Notifier interface {
	BroadcastAll(msg websocket.OutgoingMessage)
	SendToUser(userID int64, msg websocket.OutgoingMessage)
}

// Service 随机匹配引擎。等待队列是唯一的共享可变状态，
// 由 mu 独占保护；对外部协作方（房间、用户、hub）的调用都在锁外。
type Service struct {
	mu    sync.Mutex
	queue waitingQueue

	rooms *room.Service
	users user.Repository
	hub   Notifier
}

func NewService(rooms *room.Service, users user.Repository, hub Notifier) *Service {
	return &Service{
		rooms: rooms,
		users: users,
		hub:   hub,
	}
}

// RequestMatch 处理一次匹配请求。
// 返回 (pairing, queued, err)：配对成功给 pairing；没等到人则入队并返回 queued=true。
// 配对后的建房 / 通知失败不会把两人放回队列，由客户端重试。
func (s *Service) RequestMatch(ctx context.Context, userID int64) (*Pairing, bool, error) {
	if userID <= 0 {
		return nil, false, ErrMissingUserID
	}

	// 队列决策整体在临界区内：弹出、自匹配回退、查重入队
	// 必须是一个原子序列，否则两个并发请求可能互相错过或重复占位。
	s.mu.Lock()
	partnerID, found := s.queue.popFront()
	if found && partnerID == userID {
		// 同一用户重复提交的竞态：当作没弹出，原样放回队首
		s.queue.pushFront(partnerID)
		found = false
	}
	if !found {
		s.queue.pushBackUnique(userID)
		s.mu.Unlock()
		return nil, true, nil
	}
	s.mu.Unlock()

	// 此刻双方都已离开队列，后续步骤只影响这一次配对
	r, err := s.allocateTempRoom(ctx, userID, partnerID)
	if err != nil {
		utils.Error.Printf("pairing %d <-> %d failed: %v", userID, partnerID, err)
		return nil, false, err
	}

	// 两侧独立通知，一侧失败不影响另一侧
	s.sendMatchResult(ctx, userID, partnerID, r.ID)
	s.sendMatchResult(ctx, partnerID, userID, r.ID)

	utils.Info.Printf("matched %d <-> %d room=%d", userID, partnerID, r.ID)
	return &Pairing{PartnerID: partnerID, RoomID: r.ID}, false, nil
}

// allocateTempRoom 创建 2 人临时房间并拉双方入房。
// 新房从空开始，这两次 join 不可能合法地撞上容量限制；
// 任何一步失败都判定本次配对失败，已产生的副作用不回滚。
func (s *Service) allocateTempRoom(ctx context.Context, creatorID, partnerID int64) (*room.Room, error) {
	r, err := s.rooms.Create(ctx, &room.Room{
		Name:        fmt.Sprintf("临时聊天-%d", time.Now().UnixMilli()),
		MaxCapacity: TempRoomCapacity,
		CreatedBy:   creatorID,
	})
	if err != nil {
		return nil, fmt.Errorf("create temp room: %w", err)
	}

	if _, err := s.rooms.Join(ctx, r.ID, creatorID); err != nil {
		return nil, fmt.Errorf("join temp room %d for %d: %w", r.ID, creatorID, err)
	}
	if _, err := s.rooms.Join(ctx, r.ID, partnerID); err != nil {
		// 房间里已留下一个成员，按部分失败上报
		return nil, fmt.Errorf("join temp room %d for %d: %w", r.ID, partnerID, err)
	}
	return r, nil
}

// sendMatchResult 向 recipientID 的专属通道推送对方资料。
// 对方资料查不到（并发注销）就静默跳过这一侧。
func (s *Service) sendMatchResult(ctx context.Context, recipientID, matchedID, roomID int64) {
	matched, err := s.users.FindByID(ctx, matchedID)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			utils.Error.Printf("lookup matched user %d: %v", matchedID, err)
		}
		return
	}

	s.hub.SendToUser(recipientID, websocket.OutgoingMessage{
		Event: "matchResult",
		Data: MatchResult{
			MatchedUserId:    matched.ID,
			MatchedUsername:  matched.Username,
			MatchedAvatarUrl: matched.AvatarUrl,
			TempRoomId:       roomID,
		},
	})
}

// BroadcastRoomMessage 群聊消息：拒绝空内容，其余原样广播到 topic
func (s *Service) BroadcastRoomMessage(msg *RoomMessage) error {
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return ErrEmptyContent
	}
	s.hub.BroadcastAll(websocket.OutgoingMessage{
		Event: "roomMessage",
		Data:  msg,
	})
	return nil
}

// WaitingCount 当前排队人数（观测用）
func (s *Service) WaitingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.len()
}
