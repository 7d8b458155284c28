package room

import (
	"context"
	"sync"
	"time"
)

// memRepo 内存实现，仅供测试
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rooms  map[int64]*Room
}

func NewMemoryRepo() Repository {
	return &memRepo{
		nextID: 1,
		rooms:  make(map[int64]*Room),
	}
}

func cloneRoom(r *Room) *Room {
	cp := *r
	cp.Members = append(make([]int64, 0, len(r.Members)), r.Members...)
	return &cp
}

func (m *memRepo) Create(ctx context.Context, r *Room) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := cloneRoom(r)
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.nextID++
	m.rooms[cp.ID] = cp
	return cloneRoom(cp), nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRoom(r), nil
}

func (m *memRepo) FindAll(ctx context.Context) ([]*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*Room, 0, len(m.rooms))
	for i := int64(1); i < m.nextID; i++ {
		if r, ok := m.rooms[i]; ok {
			all = append(all, cloneRoom(r))
		}
	}
	return all, nil
}

func (m *memRepo) Save(ctx context.Context, r *Room) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.ID]; !ok {
		return nil, ErrNotFound
	}
	m.rooms[r.ID] = cloneRoom(r)
	return cloneRoom(r), nil
}
