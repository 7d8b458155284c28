package user

import (
	"regexp"
	"strings"
)

// 用户名、密码校验规则
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	passwordPattern = regexp.MustCompile(`^.{6,20}$`)
)

func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func ValidPassword(password string) bool {
	return passwordPattern.MatchString(password)
}

// applyUpdate 把更新请求合并进已有用户，只处理非空且有效的值。
// 用户名本身的合法性与唯一性由 handler 先行校验。
func applyUpdate(dbUser *User, req *UpdateRequest) {
	if req.Username != "" && strings.TrimSpace(req.Username) != "" {
		dbUser.Username = strings.TrimSpace(req.Username)
	}
	if strings.TrimSpace(req.AvatarUrl) != "" {
		dbUser.AvatarUrl = req.AvatarUrl
	}
	if strings.TrimSpace(req.Gender) != "" {
		dbUser.Gender = req.Gender
	}
	if req.Age > 0 {
		dbUser.Age = req.Age
	}
	if strings.TrimSpace(req.Region) != "" {
		dbUser.Region = req.Region
	}
	if req.Signature != nil {
		dbUser.Signature = *req.Signature
	}
}
