package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("alice"))
	assert.True(t, ValidUsername("user_01"))
	assert.True(t, ValidUsername("ABC"))

	assert.False(t, ValidUsername(""))
	assert.False(t, ValidUsername("ab")) // 太短
	assert.False(t, ValidUsername("this_name_is_way_too_long_x"))
	assert.False(t, ValidUsername("带中文"))
	assert.False(t, ValidUsername("has space"))
	assert.False(t, ValidUsername("semi;colon"))
}

func Test_ValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("123456"))
	assert.True(t, ValidPassword("p@ss word!"))

	assert.False(t, ValidPassword("12345"))
	assert.False(t, ValidPassword(""))
	assert.False(t, ValidPassword("123456789012345678901")) // 21 位
}

func Test_ApplyUpdate_MergesOnlyValidFields(t *testing.T) {
	dbUser := &User{
		ID:        1,
		Username:  "alice",
		AvatarUrl: "https://example.com/a.png",
		Gender:    "female",
		Age:       20,
		Region:    "Shanghai",
		Signature: "hello",
	}

	// 空值 / 非法值一律不动原字段
	applyUpdate(dbUser, &UpdateRequest{
		Username:  "  ",
		AvatarUrl: "",
		Gender:    "   ",
		Age:       -1,
		Region:    "",
	})
	assert.Equal(t, "alice", dbUser.Username)
	assert.Equal(t, "https://example.com/a.png", dbUser.AvatarUrl)
	assert.Equal(t, "female", dbUser.Gender)
	assert.Equal(t, 20, dbUser.Age)
	assert.Equal(t, "Shanghai", dbUser.Region)
	assert.Equal(t, "hello", dbUser.Signature)

	// 有效值逐个覆盖
	sig := ""
	applyUpdate(dbUser, &UpdateRequest{
		Username:  "alice2",
		AvatarUrl: "https://example.com/b.png",
		Age:       21,
		Region:    "Beijing",
		Signature: &sig, // 签名允许清空
	})
	assert.Equal(t, "alice2", dbUser.Username)
	assert.Equal(t, "https://example.com/b.png", dbUser.AvatarUrl)
	assert.Equal(t, 21, dbUser.Age)
	assert.Equal(t, "Beijing", dbUser.Region)
	assert.Equal(t, "", dbUser.Signature)
}
