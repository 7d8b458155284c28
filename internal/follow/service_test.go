package follow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"VillionChat/internal/user"
)

func newTestService(t *testing.T, usernames ...string) (*Service, user.Repository, []int64) {
	t.Helper()
	users := user.NewMemoryRepo()
	ids := make([]int64, 0, len(usernames))
	for _, name := range usernames {
		u, err := users.Create(context.Background(), &user.User{Username: name, Password: "secret123"})
		assert.NoError(t, err)
		ids = append(ids, u.ID)
	}
	return NewService(NewMemoryRepo(), users), users, ids
}

func Test_Follow_Self(t *testing.T) {
	svc, _, ids := newTestService(t, "alice")
	err := svc.Follow(context.Background(), ids[0], ids[0])
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func Test_Follow_MissingFollowee(t *testing.T) {
	svc, _, ids := newTestService(t, "alice")
	err := svc.Follow(context.Background(), ids[0], 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_Follow_Idempotent(t *testing.T) {
	svc, _, ids := newTestService(t, "alice", "bob")

	assert.NoError(t, svc.Follow(context.Background(), ids[0], ids[1]))
	// 重复关注不报错也不产生第二条记录
	assert.NoError(t, svc.Follow(context.Background(), ids[0], ids[1]))

	following, err := svc.Following(context.Background(), ids[0])
	assert.NoError(t, err)
	assert.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)
}

func Test_FollowingAndFollowers(t *testing.T) {
	svc, _, ids := newTestService(t, "alice", "bob", "carol")
	a, b, c := ids[0], ids[1], ids[2]

	assert.NoError(t, svc.Follow(context.Background(), a, b))
	assert.NoError(t, svc.Follow(context.Background(), a, c))
	assert.NoError(t, svc.Follow(context.Background(), c, b))

	following, err := svc.Following(context.Background(), a)
	assert.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := svc.Followers(context.Background(), b)
	assert.NoError(t, err)
	if assert.Len(t, followers, 2) {
		names := []string{followers[0].Username, followers[1].Username}
		assert.ElementsMatch(t, []string{"alice", "carol"}, names)
	}

	// 没有关系时返回空列表而不是 nil 错误
	empty, err := svc.Followers(context.Background(), c)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func Test_Unfollow(t *testing.T) {
	svc, _, ids := newTestService(t, "alice", "bob")

	assert.NoError(t, svc.Follow(context.Background(), ids[0], ids[1]))
	assert.NoError(t, svc.Unfollow(context.Background(), ids[0], ids[1]))

	following, err := svc.Following(context.Background(), ids[0])
	assert.NoError(t, err)
	assert.Empty(t, following)

	// 取消不存在的关系是幂等的
	assert.NoError(t, svc.Unfollow(context.Background(), ids[0], ids[1]))
}

func Test_Following_SkipsDeletedUser(t *testing.T) {
	svc, users, ids := newTestService(t, "alice", "bob", "carol")

	assert.NoError(t, svc.Follow(context.Background(), ids[0], ids[1]))
	assert.NoError(t, svc.Follow(context.Background(), ids[0], ids[2]))
	assert.NoError(t, users.Delete(context.Background(), ids[1]))

	// 已注销用户从结果里剔除
	following, err := svc.Following(context.Background(), ids[0])
	assert.NoError(t, err)
	assert.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Username)
}
