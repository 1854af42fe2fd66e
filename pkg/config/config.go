package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
)

type Config struct {
	ServerPort string
	BuildMode  string
	Mongodb    MongodbConfig
	Jwt        JwtConfig
	Cookie     CookieConfig
	Website    WebsiteConfig
	Admin      AdminConfig
	Mail       MailConfig
	Realtime   RealtimeConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = DefaultServerPort
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	adminConfig, err := ReadAdminConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: serverPort,
		BuildMode:  os.Getenv(BuildMode),
		Mongodb:    mongodbConfig,
		Jwt:        jwtConfig,
		Cookie:     ReadCookieConfig(),
		Website:    ReadWebsiteConfig(),
		Admin:      adminConfig,
		Mail:       ReadMailConfig(),
		Realtime: RealtimeConfig{
			RedisUrl: os.Getenv(RedisUrl),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.BuildMode == BuildModeProduction
}

// WebsiteDomain is the frontend origin used for verification links and CORS.
func (c *Config) WebsiteDomain() string {
	if c.IsProduction() {
		return c.Website.Production
	}

	return c.Website.Development
}

// Print writes the configuration to stdout with every secret redacted.
func (c *Config) Print() {
	redacted := *c
	redacted.Mongodb.Password = redactedConfigurationValue
	redacted.Jwt.AccessTokenSecret = []byte(redactedConfigurationValue)
	redacted.Jwt.RefreshTokenSecret = []byte(redactedConfigurationValue)
	redacted.Admin.CreationSecretKey = redactedConfigurationValue
	if redacted.Mail.BrevoApiKey != "" {
		redacted.Mail.BrevoApiKey = redactedConfigurationValue
	}
	if redacted.Realtime.RedisUrl != "" {
		redacted.Realtime.RedisUrl = redactedConfigurationValue
	}

	_, _ = pretty.Println(redacted)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	return MongodbConfig{
		Uri:      mongodbUri,
		Username: os.Getenv(MongodbUsername),
		Password: os.Getenv(MongodbPassword),
		Database: mongodbDatabase,
		Collections: map[string]string{
			MongodbUserCollection:   getEnvOrDefault(MongodbUserCollection, DefaultUserCollection),
			MongodbAdminCollection:  getEnvOrDefault(MongodbAdminCollection, DefaultAdminCollection),
			MongodbThreadCollection: getEnvOrDefault(MongodbThreadCollection, DefaultThreadCollection),
		},
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	accessTokenSecret := os.Getenv(AccessTokenSecretSignature)
	if accessTokenSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, AccessTokenSecretSignature)
	}

	refreshTokenSecret := os.Getenv(RefreshTokenSecretSignature)
	if refreshTokenSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, RefreshTokenSecretSignature)
	}

	if accessTokenSecret == refreshTokenSecret {
		return JwtConfig{}, errors.New("access and refresh token secrets must differ")
	}

	accessTokenLife, err := readDuration(AccessTokenLife, DefaultAccessTokenLife)
	if err != nil {
		return JwtConfig{}, err
	}

	refreshTokenLife, err := readDuration(RefreshTokenLife, DefaultRefreshTokenLife)
	if err != nil {
		return JwtConfig{}, err
	}

	return JwtConfig{
		AccessTokenSecret:  []byte(accessTokenSecret),
		AccessTokenLife:    accessTokenLife,
		RefreshTokenSecret: []byte(refreshTokenSecret),
		RefreshTokenLife:   refreshTokenLife,
	}, nil
}

func ReadAdminConfig() (AdminConfig, error) {
	creationSecretKey := os.Getenv(AdminCreationSecretKey)
	if creationSecretKey == "" {
		return AdminConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, AdminCreationSecretKey)
	}

	return AdminConfig{
		CreationSecretKey: creationSecretKey,
	}, nil
}

func ReadCookieConfig() CookieConfig {
	return CookieConfig{
		Domain:           os.Getenv(CookieDomain),
		SocketCookieName: getEnvOrDefault(SocketCookieName, DefaultSocketCookieName),
	}
}

func ReadWebsiteConfig() WebsiteConfig {
	return WebsiteConfig{
		Production:  getEnvOrDefault(WebsiteDomainProduction, DefaultWebsiteDomain),
		Development: getEnvOrDefault(WebsiteDomainDevelopment, DefaultWebsiteDomain),
	}
}

func ReadMailConfig() MailConfig {
	return MailConfig{
		BrevoApiKey: os.Getenv(BrevoApiKey),
		SenderEmail: os.Getenv(BrevoSenderEmail),
		SenderName:  getEnvOrDefault(BrevoSenderName, DefaultBrevoSenderName),
	}
}

func readDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	rawValue := os.Getenv(key)
	if rawValue == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(rawValue)
	if err != nil {
		return 0, fmt.Errorf(EnvironmentVariableInvalid, key, err)
	}

	return duration, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
