package follow

import (
	"context"
	"errors"

	"VillionChat/internal/user"
)

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("followee does not exist")
)

type Service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) *Service {
	return &Service{repo: repo, users: users}
}

// Follow 关注；重复关注幂等
func (s *Service) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	if _, err := s.users.FindByID(ctx, followeeID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	exists, err := s.repo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.repo.Create(ctx, followerID, followeeID)
}

func (s *Service) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.repo.Delete(ctx, followerID, followeeID)
}

// Following 我关注的人（解析为用户记录）
func (s *Service) Following(ctx context.Context, userID int64) ([]*user.User, error) {
	ids, err := s.repo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

// Followers 关注我的人
func (s *Service) Followers(ctx context.Context, userID int64) ([]*user.User, error) {
	ids, err := s.repo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

func (s *Service) resolve(ctx context.Context, ids []int64) ([]*user.User, error) {
	users := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.FindByID(ctx, id)
		if errors.Is(err, user.ErrNotFound) {
			// 用户可能已注销，跳过
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
