package chat

// waitingQueue 等待匹配的用户队列：FIFO、去重。
// 本身不加锁，pop / requeue / push 的多步决策由 Service 的互斥锁整体保护，
// 单步线程安全的容器挡不住"弹出后又放回"这类组合竞态。
type waitingQueue struct {
	ids []int64
}

func (q *waitingQueue) popFront() (int64, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, true
}

func (q *waitingQueue) pushFront(id int64) {
	q.ids = append([]int64{id}, q.ids...)
}

// pushBackUnique 入队；已在队中则不动（一个用户不能占两个位置）
func (q *waitingQueue) pushBackUnique(id int64) bool {
	if q.contains(id) {
		return false
	}
	q.ids = append(q.ids, id)
	return true
}

func (q *waitingQueue) contains(id int64) bool {
	for _, v := range q.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (q *waitingQueue) len() int {
	return len(q.ids)
}
