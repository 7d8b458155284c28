package user

import (
	"context"
	"sync"
	"time"
)

// memRepo 内存实现，仅供测试
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*User
}

func NewMemoryRepo() Repository {
	return &memRepo{
		nextID: 1,
		users:  make(map[int64]*User),
	}
}

func clone(u *User) *User {
	cp := *u
	return &cp
}

func (m *memRepo) Create(ctx context.Context, u *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := clone(u)
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.nextID++
	m.users[cp.ID] = cp
	return clone(cp), nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(u), nil
}

func (m *memRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) FindAll(ctx context.Context) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*User, 0, len(m.users))
	for i := int64(1); i < m.nextID; i++ {
		if u, ok := m.users[i]; ok {
			all = append(all, clone(u))
		}
	}
	return all, nil
}

func (m *memRepo) Save(ctx context.Context, u *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return nil, ErrNotFound
	}
	m.users[u.ID] = clone(u)
	return clone(u), nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}
