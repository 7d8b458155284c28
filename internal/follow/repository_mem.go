package follow

import (
	"context"
	"sync"
)

type pair struct {
	follower int64
	followee int64
}

// memRepo 内存实现，仅供测试
type memRepo struct {
	mu    sync.Mutex
	pairs []pair
}

func NewMemoryRepo() Repository {
	return &memRepo{}
}

func (m *memRepo) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pairs {
		if p.follower == followerID && p.followee == followeeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) Create(ctx context.Context, followerID, followeeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pairs {
		if p.follower == followerID && p.followee == followeeID {
			return nil
		}
	}
	m.pairs = append(m.pairs, pair{follower: followerID, followee: followeeID})
	return nil
}

func (m *memRepo) Delete(ctx context.Context, followerID, followeeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.pairs {
		if p.follower == followerID && p.followee == followeeID {
			m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) FolloweeIDs(ctx context.Context, followerID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0)
	for _, p := range m.pairs {
		if p.follower == followerID {
			ids = append(ids, p.followee)
		}
	}
	return ids, nil
}

func (m *memRepo) FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0)
	for _, p := range m.pairs {
		if p.followee == followeeID {
			ids = append(ids, p.follower)
		}
	}
	return ids, nil
}
