package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"fittrack-api/internal/account"
	"fittrack-api/internal/auth"
	"fittrack-api/internal/realtime"
	"fittrack-api/internal/thread"
	"fittrack-api/pkg/config"
	"fittrack-api/pkg/jwt_generator"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/notification"
	"fittrack-api/pkg/server"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync() //nolint:errcheck

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err := godotenv.Load()
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	ctx := logger.InjectContext(context.Background(), log)
	mongoDbClient, err := setupMongodbClient(ctx, cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Errorw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient, ctx)

	userRepository := account.NewRepository(mongoDbClient, cfg, config.MongodbUserCollection)
	adminRepository := account.NewRepository(mongoDbClient, cfg, config.MongodbAdminCollection)
	threadRepository := thread.NewRepository(mongoDbClient, cfg)
	for _, ensureIndexes := range []func(context.Context) error{
		userRepository.EnsureIndexes,
		adminRepository.EnsureIndexes,
		threadRepository.EnsureIndexes,
	} {
		err = ensureIndexes(ctx)
		if err != nil {
			log.Fatalw(
				"failed to ensure mongodb indexes",
				zap.Error(err),
			)
		}
	}

	jwtGenerator := jwt_generator.NewJwtGenerator()
	notifier := notification.NewNotifier(cfg.Mail)
	transport := auth.NewCookieTransport(cfg)
	authMiddleware := auth.NewMiddleware(jwtGenerator, cfg, transport)

	directory := account.NewDirectory(userRepository, adminRepository)
	accountService := account.NewService(directory, notifier, cfg)
	authService := auth.NewService(directory, jwtGenerator, cfg)
	threadService := thread.NewService(threadRepository, directory)

	handlers := []server.Handler{
		account.NewHandler(accountService, authMiddleware.Authorize),
		auth.NewHandler(authService, transport, authMiddleware.Authorize),
		thread.NewHandler(threadService, authMiddleware.Authorize),
	}

	// API Gateway proxies plain HTTP only, so sockets are served by the
	// long running process.
	var gateway *realtime.Gateway
	if isAtRemote == "" {
		var broker realtime.Broker
		broker, err = setupBroker(cfg)
		if err != nil {
			log.Fatalw(
				"failed to setup realtime broker",
				zap.Error(err),
			)
		}

		gateway, err = realtime.NewGateway(ctx, threadService, broker)
		if err != nil {
			log.Fatalw(
				"failed to start realtime gateway",
				zap.Error(err),
			)
		}
		handlers = append(handlers, realtime.NewHandler(ctx, gateway, cfg))
	}

	srv := server.NewServer(cfg, handlers)

	app := srv.GetFiberInstance()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.WebsiteDomain(),
		AllowCredentials: true,
	}))
	app.Use(requestid.New())
	app.Use(logger.Middleware(log))
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	if isAtRemote == "" {
		srv.OnShutdown(gateway.Close)

		err = srv.Start()
		if err != nil {
			panic(err)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func setupMongodbClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	credentials := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetServerAPIOptions(mongodbServerAPIOptions)
	if cfg.Mongodb.Username != "" {
		credentials.SetAuth(options.Credential{
			Username: cfg.Mongodb.Username,
			Password: cfg.Mongodb.Password,
		})
	}

	mongodbClient, err := mongo.Connect(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return mongodbClient, nil
}

func setupBroker(cfg *config.Config) (realtime.Broker, error) {
	if cfg.Realtime.RedisUrl == "" {
		return realtime.NewLocalBroker(), nil
	}

	redisOptions, err := redis.ParseURL(cfg.Realtime.RedisUrl)
	if err != nil {
		return nil, err
	}

	return realtime.NewRedisBroker(redis.NewClient(redisOptions)), nil
}
