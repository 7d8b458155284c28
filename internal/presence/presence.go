package presence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// key 约定：
//
//	set: presence:online              -> Set(userID,...)
//	kv : presence:session:{userID}    -> 本次连接的 session id（带 TTL，掉线残留自动过期）
const (
	onlineKey  = "presence:online"
	sessionTTL = 2 * time.Minute
)

func sessionKey(userID int64) string {
	return fmt.Sprintf("presence:session:%d", userID)
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Connect 标记用户在线，返回本次连接的 session id
func (s *Store) Connect(ctx context.Context, userID int64) (string, error) {
	session := uuid.NewString()
	p := s.rdb.Pipeline()
	p.SAdd(ctx, onlineKey, userID)
	p.Set(ctx, sessionKey(userID), session, sessionTTL)
	if _, err := p.Exec(ctx); err != nil {
		return "", err
	}
	return session, nil
}

// Refresh 心跳续期 session TTL
func (s *Store) Refresh(ctx context.Context, userID int64) error {
	return s.rdb.Expire(ctx, sessionKey(userID), sessionTTL).Err()
}

func (s *Store) Disconnect(ctx context.Context, userID int64) error {
	p := s.rdb.Pipeline()
	p.SRem(ctx, onlineKey, userID)
	p.Del(ctx, sessionKey(userID))
	_, err := p.Exec(ctx)
	return err
}

func (s *Store) IsOnline(ctx context.Context, userID int64) (bool, error) {
	return s.rdb.SIsMember(ctx, onlineKey, userID).Result()
}

func (s *Store) Online(ctx context.Context) ([]int64, error) {
	members, err := s.rdb.SMembers(ctx, onlineKey).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
