package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repository 用户持久化抽象（Postgres 实现 + 测试用内存实现）
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) (*User, error)
	Delete(ctx context.Context, id int64) error
}
