package presence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb), mr
}

func Test_ConnectDisconnect(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	session, err := s.Connect(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, session)

	online, err := s.IsOnline(ctx, 42)
	assert.NoError(t, err)
	assert.True(t, online)

	// session key 带 TTL，掉线残留能自动过期
	assert.True(t, mr.Exists("presence:session:42"))
	assert.Greater(t, mr.TTL("presence:session:42").Seconds(), 0.0)

	assert.NoError(t, s.Disconnect(ctx, 42))
	online, err = s.IsOnline(ctx, 42)
	assert.NoError(t, err)
	assert.False(t, online)
	assert.False(t, mr.Exists("presence:session:42"))
}

func Test_Online_List(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		_, err := s.Connect(ctx, id)
		assert.NoError(t, err)
	}
	assert.NoError(t, s.Disconnect(ctx, 2))

	ids, err := s.Online(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 3}, ids)
}

func Test_Connect_NewSessionPerConnection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.Connect(ctx, 7)
	assert.NoError(t, err)
	second, err := s.Connect(ctx, 7)
	assert.NoError(t, err)
	// 重连拿到新的 session id
	assert.NotEqual(t, first, second)

	assert.NoError(t, s.Refresh(ctx, 7))
}
