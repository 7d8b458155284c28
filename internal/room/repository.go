package room

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("room not found")

// Repository 房间持久化抽象；ID 由存储层在 Create 时分配
type Repository interface {
	Create(ctx context.Context, r *Room) (*Room, error)
	FindByID(ctx context.Context, id int64) (*Room, error)
	FindAll(ctx context.Context) ([]*Room, error)
	// Save 持久化房间字段及成员集合
	Save(ctx context.Context, r *Room) (*Room, error)
}
