package websocket

import (
	"log"
	"sync"
)

type HubInterface interface {
	BroadcastAll(msg OutgoingMessage)
	SendToUser(userID int64, msg OutgoingMessage)
	Close()
}

type Hub struct {
	clients    map[int64]*Client // userID -> client
	register   chan *Client
	unregister chan *Client
	broadcast  chan OutgoingMessage
	sendOne    chan sendReq
	incoming   chan IncomingMessage
	// OnIncoming 把客户端消息统一转发给聊天层
	OnIncoming func(IncomingMessage)
	// 上线 / 下线钩子（presence 在 main 里接上）
	OnConnect    func(userID int64)
	OnDisconnect func(userID int64)
	quit         chan struct{}
	mu           sync.RWMutex
}

type sendReq struct {
	UserID  int64
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan OutgoingMessage),
		sendOne:    make(chan sendReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {

	log.Println("Hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			// 同一用户重连时顶掉旧连接
			if old, ok := h.clients[c.UserID]; ok {
				close(old.Send)
			}
			h.clients[c.UserID] = c
			log.Printf("Hub.register -> %d (当前连接数: %d)", c.UserID, len(h.clients))
			h.mu.Unlock()

			if h.OnConnect != nil {
				h.OnConnect(c.UserID)
			}

		case c := <-h.unregister:
			h.mu.Lock()
			removed := false
			if cur, ok := h.clients[c.UserID]; ok && cur == c {
				delete(h.clients, c.UserID)
				removed = true
				log.Printf("Hub.unregister -> %d (当前连接数: %d)", c.UserID, len(h.clients))
				close(c.Send)
			}
			h.mu.Unlock()

			if removed && h.OnDisconnect != nil {
				h.OnDisconnect(c.UserID)
			}

		case msg := <-h.broadcast:
			// 群聊 topic：发给所有在线客户端
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
				}
			}

		case req := <-h.sendOne:
			if client, ok := h.clients[req.UserID]; ok {
				select {
				case client.Send <- req.Message:
				default:
					// 缓冲已满则丢弃，不阻塞 hub
				}
			}

		case req := <-h.incoming:
			if h.OnIncoming != nil {
				h.OnIncoming(req)
			}

		case <-h.quit:
			for _, c := range h.clients {
				close(c.Send)
			}
			return
		}
	}
}

// BroadcastAll 广播到 topic（所有已连接客户端）
func (h *Hub) BroadcastAll(msg OutgoingMessage) {
	h.broadcast <- msg
}

// SendToUser 用户专属通道单播
func (h *Hub) SendToUser(userID int64, msg OutgoingMessage) {
	h.sendOne <- sendReq{
		UserID:  userID,
		Message: msg,
	}
}

func (h *Hub) Close() {
	close(h.quit)
}
