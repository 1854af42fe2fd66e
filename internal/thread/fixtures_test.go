//go:build unit || integration

package thread

import (
	"time"

	"fittrack-api/pkg/jwt_generator"
)

const (
	TestUserId    = "3a4c5d0e-7b3c-4f0a-9b8e-1d2c3b4a5f6e"
	TestRoomId    = "room_1"
	TestThreadId  = "7e0b9d64-5f7c-4b7e-8e55-6d7c0b1f2a3e"
	TestMessageId = "1b2c3d4e-5f60-4718-9a0b-c1d2e3f40516"
	TestText      = "How many sets should I do?"
)

var (
	TestNow    = time.UnixMilli(1700000000000)
	TestSender = Sender{
		SenderId:   TestUserId,
		SenderName: "a",
		SenderRole: jwt_generator.RoleMember,
	}
)
