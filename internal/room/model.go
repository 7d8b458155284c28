package room

import "time"

const DefaultCapacity = 8

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxCapacity int       `json:"maxCapacity"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	Members     []int64   `json:"members"`
}

// CreateRequest 建房参数
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxCapacity int    `json:"maxCapacity"`
	UserID      int64  `json:"userId" binding:"required"`
}

// MemberRequest 加入 / 离开房间参数
type MemberRequest struct {
	UserID int64 `json:"userId"`
}

func (r *Room) HasMember(userID int64) bool {
	for _, id := range r.Members {
		if id == userID {
			return true
		}
	}
	return false
}
