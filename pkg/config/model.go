package config

import "time"

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"
	EnvironmentVariableInvalid    = "%s variable is not valid: %w"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"
	BuildMode  = "BUILD_MODE"

	MongodbUri              = "MONGODB_URI"
	MongodbUsername         = "MONGODB_USERNAME"
	MongodbPassword         = "MONGODB_PASSWORD"
	MongodbDatabase         = "MONGODB_DATABASE"
	MongodbUserCollection   = "MONGODB_USER_COLLECTION"
	MongodbAdminCollection  = "MONGODB_ADMIN_COLLECTION"
	MongodbThreadCollection = "MONGODB_THREAD_COLLECTION"

	AccessTokenSecretSignature  = "ACCESS_TOKEN_SECRET_SIGNATURE"
	AccessTokenLife             = "ACCESS_TOKEN_LIFE"
	RefreshTokenSecretSignature = "REFRESH_TOKEN_SECRET_SIGNATURE"
	RefreshTokenLife            = "REFRESH_TOKEN_LIFE"

	CookieDomain     = "COOKIE_DOMAIN"
	SocketCookieName = "SOCKET_COOKIE_NAME"

	WebsiteDomainProduction  = "WEBSITE_DOMAIN_PRODUCTION"
	WebsiteDomainDevelopment = "WEBSITE_DOMAIN_DEVELOPMENT"

	AdminCreationSecretKey = "ADMIN_CREATION_SECRET_KEY"

	BrevoApiKey      = "BREVO_API_KEY"
	BrevoSenderEmail = "BREVO_SENDER_EMAIL"
	BrevoSenderName  = "BREVO_SENDER_NAME"

	RedisUrl = "REDIS_URL"
)

const (
	BuildModeProduction = "production"

	DefaultServerPort          = "8080"
	DefaultUserCollection      = "users"
	DefaultAdminCollection     = "admins"
	DefaultThreadCollection    = "threads"
	DefaultAccessTokenLife     = time.Hour
	DefaultRefreshTokenLife    = 14 * 24 * time.Hour
	DefaultSocketCookieName    = "fittrack-socket"
	DefaultWebsiteDomain       = "http://localhost:5173"
	DefaultBrevoSenderName     = "FitTrack"
	redactedConfigurationValue = "[REDACTED]"
)

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	AccessTokenSecret  []byte
	AccessTokenLife    time.Duration
	RefreshTokenSecret []byte
	RefreshTokenLife   time.Duration
}

type CookieConfig struct {
	Domain           string
	SocketCookieName string
}

type WebsiteConfig struct {
	Production  string
	Development string
}

type AdminConfig struct {
	CreationSecretKey string
}

type MailConfig struct {
	BrevoApiKey string
	SenderEmail string
	SenderName  string
}

type RealtimeConfig struct {
	RedisUrl string
}
