package follow

import "context"

type Follow struct {
	ID         int64 `json:"id"`
	FollowerID int64 `json:"followerId"`
	FolloweeID int64 `json:"followeeId"`
}

// Repository 关注关系持久化抽象
type Repository interface {
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	Create(ctx context.Context, followerID, followeeID int64) error
	Delete(ctx context.Context, followerID, followeeID int64) error
	FolloweeIDs(ctx context.Context, followerID int64) ([]int64, error)
	FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error)
}
