package room

import (
	"context"
	"errors"

	"VillionChat/internal/user"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoomFull     = errors.New("room is full")
)

// Service 薄编排层：容量检查 + 成员集合维护，其余直通仓储
type Service struct {
	rooms Repository
	users user.Repository
}

func NewService(rooms Repository, users user.Repository) *Service {
	return &Service{rooms: rooms, users: users}
}

func (s *Service) Create(ctx context.Context, r *Room) (*Room, error) {
	if r.MaxCapacity <= 0 {
		r.MaxCapacity = DefaultCapacity
	}
	return s.rooms.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id int64) (*Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Room, error) {
	return s.rooms.FindAll(ctx)
}

// Join 房间、用户都必须存在；满员拒绝；重复加入幂等
func (s *Service) Join(ctx context.Context, roomID, userID int64) (*Room, error) {
	r, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if r.HasMember(userID) {
		return r, nil
	}
	if len(r.Members) >= r.MaxCapacity {
		return nil, ErrRoomFull
	}
	r.Members = append(r.Members, userID)
	return s.rooms.Save(ctx, r)
}

func (s *Service) Leave(ctx context.Context, roomID, userID int64) (*Room, error) {
	r, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	for i, id := range r.Members {
		if id == userID {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			break
		}
	}
	return s.rooms.Save(ctx, r)
}
