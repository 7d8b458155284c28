package user

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	AvatarUrl string    `json:"avatarUrl"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	Region    string    `json:"region"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest / LoginRequest 前端提交的注册、登录参数
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AvatarUrl string `json:"avatarUrl"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Region    string `json:"region"`
	Signature string `json:"signature"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateRequest 更新用户资料，只合并非空且有效的字段
type UpdateRequest struct {
	Username  string  `json:"username"`
	AvatarUrl string  `json:"avatarUrl"`
	Gender    string  `json:"gender"`
	Age       int     `json:"age"`
	Region    string  `json:"region"`
	Signature *string `json:"signature"`
}
