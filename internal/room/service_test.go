package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"VillionChat/internal/user"
)

func newTestService(t *testing.T, usernames ...string) (*Service, []int64) {
	t.Helper()
	users := user.NewMemoryRepo()
	ids := make([]int64, 0, len(usernames))
	for _, name := range usernames {
		u, err := users.Create(context.Background(), &user.User{Username: name, Password: "secret123"})
		assert.NoError(t, err)
		ids = append(ids, u.ID)
	}
	return NewService(NewMemoryRepo(), users), ids
}

func Test_Create_DefaultCapacity(t *testing.T) {
	svc, ids := newTestService(t, "alice")

	r, err := svc.Create(context.Background(), &Room{Name: "大厅", CreatedBy: ids[0]})
	assert.NoError(t, err)
	assert.NotZero(t, r.ID)
	assert.Equal(t, DefaultCapacity, r.MaxCapacity)

	// 显式容量不被覆盖
	r2, err := svc.Create(context.Background(), &Room{Name: "小房", MaxCapacity: 2, CreatedBy: ids[0]})
	assert.NoError(t, err)
	assert.Equal(t, 2, r2.MaxCapacity)
	assert.NotEqual(t, r.ID, r2.ID)
}

func Test_Join_Errors(t *testing.T) {
	svc, ids := newTestService(t, "alice", "bob", "carol")

	r, err := svc.Create(context.Background(), &Room{Name: "小房", MaxCapacity: 2, CreatedBy: ids[0]})
	assert.NoError(t, err)

	// 房间不存在
	_, err = svc.Join(context.Background(), 999, ids[0])
	assert.ErrorIs(t, err, ErrNotFound)

	// 用户不存在
	_, err = svc.Join(context.Background(), r.ID, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// 正常加入两人
	_, err = svc.Join(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	updated, err := svc.Join(context.Background(), r.ID, ids[1])
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int64{ids[0], ids[1]}, updated.Members)

	// 满员拒绝
	_, err = svc.Join(context.Background(), r.ID, ids[2])
	assert.ErrorIs(t, err, ErrRoomFull)
}

func Test_Join_Idempotent(t *testing.T) {
	svc, ids := newTestService(t, "alice")

	r, err := svc.Create(context.Background(), &Room{Name: "小房", MaxCapacity: 2, CreatedBy: ids[0]})
	assert.NoError(t, err)

	_, err = svc.Join(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	// 重复加入不占第二个名额
	updated, err := svc.Join(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	assert.Equal(t, []int64{ids[0]}, updated.Members)
}

func Test_Leave(t *testing.T) {
	svc, ids := newTestService(t, "alice", "bob")

	r, err := svc.Create(context.Background(), &Room{Name: "大厅", CreatedBy: ids[0]})
	assert.NoError(t, err)
	_, err = svc.Join(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	_, err = svc.Join(context.Background(), r.ID, ids[1])
	assert.NoError(t, err)

	updated, err := svc.Leave(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	assert.Equal(t, []int64{ids[1]}, updated.Members)

	// 不在房间里的离开是幂等的
	updated, err = svc.Leave(context.Background(), r.ID, ids[0])
	assert.NoError(t, err)
	assert.Equal(t, []int64{ids[1]}, updated.Members)

	_, err = svc.Leave(context.Background(), 999, ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
}
