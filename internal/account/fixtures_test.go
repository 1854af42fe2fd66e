//go:build unit || integration

package account

const (
	TestAccountId   = "3a4c5d0e-7b3c-4f0a-9b8e-1d2c3b4a5f6e"
	TestEmail       = "a@x.com"
	TestPassword    = "Passw0rd!"
	TestVerifyToken = "018f3b7e-4a7c-7d7e-9a8b-0c1d2e3f4a5b"
	TestUpdatedAt   = int64(1700000000000)
)
