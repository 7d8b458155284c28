package chat

// TempRoomCapacity 临时房间固定 2 人
const TempRoomCapacity = 2

// MatchRequest 随机匹配请求（瞬态，不落库）
type MatchRequest struct {
	UserID int64 `json:"userId"`
}

// MatchResult 匹配结果，按接收方视角构造：描述的是"对方"
type MatchResult struct {
	MatchedUserId    int64  `json:"matchedUserId"`
	MatchedUsername  string `json:"matchedUsername"`
	MatchedAvatarUrl string `json:"matchedAvatarUrl"`
	TempRoomId       int64  `json:"tempRoomId"`
}

// Pairing 同步接口返回的配对结果
type Pairing struct {
	PartnerID int64 `json:"partnerId"`
	RoomID    int64 `json:"roomId"`
}

// RoomMessage 群聊消息，校验通过后原样转发
type RoomMessage struct {
	RoomId       int64  `json:"roomId"`
	SenderId     int64  `json:"senderId"`
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderAvatar"`
	Content      string `json:"content"`
	SendTime     string `json:"sendTime"`
}
