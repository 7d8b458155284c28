package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubBroadcastAll(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c1 := &Client{UserID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	c2 := &Client{UserID: 2, Send: make(chan OutgoingMessage, 1), Hub: hub}

	hub.register <- c1
	hub.register <- c2

	msg := OutgoingMessage{
		Event: "roomMessage",
		Data:  map[string]interface{}{"content": "hello"},
	}

	hub.BroadcastAll(msg)

	time.Sleep(20 * time.Millisecond)

	m1 := <-c1.Send
	m2 := <-c2.Send

	assert.Equal(t, "roomMessage", m1.Event)
	assert.Equal(t, "roomMessage", m2.Event)
}

func TestHubSendToUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c1 := &Client{UserID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	c2 := &Client{UserID: 2, Send: make(chan OutgoingMessage, 1), Hub: hub}

	hub.register <- c1
	hub.register <- c2

	msg := OutgoingMessage{
		Event: "matchResult",
		Data:  "hello 1",
	}

	hub.SendToUser(1, msg)

	time.Sleep(20 * time.Millisecond)

	received := <-c1.Send
	assert.Equal(t, "matchResult", received.Event)
	assert.Equal(t, "hello 1", received.Data)

	// 用户 2 的专属通道不该收到
	select {
	case <-c2.Send:
		assert.Fail(t, "user 2 should NOT receive anything")
	default:
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	var connected, disconnected []int64
	hub.OnConnect = func(id int64) { connected = append(connected, id) }
	hub.OnDisconnect = func(id int64) { disconnected = append(disconnected, id) }

	c := &Client{
		UserID: 1,
		Send:   make(chan OutgoingMessage, 1),
		Hub:    hub,
	}

	hub.register <- c
	time.Sleep(10 * time.Millisecond)

	if _, ok := hub.clients[1]; !ok {
		t.Fatalf("client should be registered")
	}

	hub.unregister <- c
	time.Sleep(10 * time.Millisecond)

	if _, ok := hub.clients[1]; ok {
		t.Fatalf("client should be removed after unregister")
	}
	assert.Equal(t, []int64{1}, connected)
	assert.Equal(t, []int64{1}, disconnected)
}

func TestHubReplacesStaleConnection(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	old := &Client{UserID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	hub.register <- old

	// 同一用户重连：旧连接被顶掉，消息走新连接
	fresh := &Client{UserID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	hub.register <- fresh

	time.Sleep(10 * time.Millisecond)

	hub.SendToUser(1, OutgoingMessage{Event: "matchResult"})
	time.Sleep(10 * time.Millisecond)

	recv := <-fresh.Send
	assert.Equal(t, "matchResult", recv.Event)

	// 旧连接的 Send 已被关闭
	_, open := <-old.Send
	assert.False(t, open)
}

func TestHubIncomingDispatch(t *testing.T) {
	hub := NewHub()

	got := make(chan IncomingMessage, 1)
	hub.OnIncoming = func(msg IncomingMessage) { got <- msg }
	go hub.Run()

	hub.incoming <- IncomingMessage{From: 7, Event: "randomMatch"}

	select {
	case msg := <-got:
		assert.Equal(t, int64(7), msg.From)
		assert.Equal(t, "randomMatch", msg.Event)
	case <-time.After(time.Second):
		t.Fatalf("incoming message was not dispatched")
	}
}
