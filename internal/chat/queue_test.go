package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WaitingQueue_FIFO(t *testing.T) {
	var q waitingQueue

	_, ok := q.popFront()
	assert.False(t, ok)

	assert.True(t, q.pushBackUnique(1))
	assert.True(t, q.pushBackUnique(2))
	assert.True(t, q.pushBackUnique(3))
	assert.Equal(t, 3, q.len())

	id, ok := q.popFront()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	id, ok = q.popFront()
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func Test_WaitingQueue_Dedupe(t *testing.T) {
	var q waitingQueue

	assert.True(t, q.pushBackUnique(7))
	// 重复入队不占第二个位置
	assert.False(t, q.pushBackUnique(7))
	assert.Equal(t, 1, q.len())
	assert.True(t, q.contains(7))
}

func Test_WaitingQueue_PushFront(t *testing.T) {
	var q waitingQueue

	q.pushBackUnique(2)
	q.pushBackUnique(3)
	// 自匹配回退：放回队首保持公平顺序
	q.pushFront(1)

	id, _ := q.popFront()
	assert.Equal(t, int64(1), id)
	id, _ = q.popFront()
	assert.Equal(t, int64(2), id)
}
