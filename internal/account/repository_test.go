//go:build integration

package account

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
)

const (
	TestMongoDbUserName = "root"
	TestMongoDbPassword = "12345"

	TestMongoDbDatabaseName    = "fittrack"
	TestMongoDbUserCollection  = "users"
	TestMongoDbAdminCollection = "admins"
)

func TestRepository_InsertAccount(t *testing.T) {
	ctx := context.Background()
	accountRepository := newTestRepository(t, ctx)

	t.Run("happy path", func(t *testing.T) {
		err := accountRepository.InsertAccount(ctx, newTestDocument(TestAccountId, TestEmail))

		assert.NoError(t, err)
	})

	t.Run("when email already exists should return conflict", func(t *testing.T) {
		err := accountRepository.InsertAccount(ctx, newTestDocument("another-id", TestEmail))

		assert.True(t, cerror.HasStatus(err, fiber.StatusConflict))
	})
}

func TestRepository_FindAccount(t *testing.T) {
	ctx := context.Background()
	accountRepository := newTestRepository(t, ctx)
	require.NoError(t, accountRepository.InsertAccount(ctx, newTestDocument(TestAccountId, TestEmail)))

	t.Run("find with email happy path", func(t *testing.T) {
		account, err := accountRepository.FindAccountWithEmail(ctx, TestEmail)

		require.NoError(t, err)
		assert.Equal(t, TestAccountId, account.Id)
	})

	t.Run("find with id happy path", func(t *testing.T) {
		account, err := accountRepository.FindAccountWithId(ctx, TestAccountId)

		require.NoError(t, err)
		assert.Equal(t, TestEmail, account.Email)
	})

	t.Run("when account does not exist should return not found", func(t *testing.T) {
		_, err := accountRepository.FindAccountWithEmail(ctx, "missing@x.com")
		assert.True(t, cerror.HasStatus(err, fiber.StatusNotFound))

		_, err = accountRepository.FindAccountWithId(ctx, "missing-id")
		assert.True(t, cerror.HasStatus(err, fiber.StatusNotFound))
	})
}

func TestRepository_ActivateAccount(t *testing.T) {
	ctx := context.Background()
	accountRepository := newTestRepository(t, ctx)
	require.NoError(t, accountRepository.InsertAccount(ctx, newTestDocument(TestAccountId, TestEmail)))

	t.Run("when token mismatches should not activate", func(t *testing.T) {
		_, err := accountRepository.ActivateAccount(ctx, TestAccountId, "wrong-token", TestUpdatedAt)

		assert.True(t, cerror.HasStatus(err, fiber.StatusNotAcceptable))
	})

	t.Run("happy path", func(t *testing.T) {
		account, err := accountRepository.ActivateAccount(ctx, TestAccountId, TestVerifyToken, TestUpdatedAt)

		require.NoError(t, err)
		assert.True(t, account.IsActive)
		assert.Empty(t, account.VerifyToken)
		assert.Equal(t, TestUpdatedAt, account.UpdatedAt)
	})

	t.Run("activation should not be applied twice", func(t *testing.T) {
		_, err := accountRepository.ActivateAccount(ctx, TestAccountId, TestVerifyToken, TestUpdatedAt)

		assert.True(t, cerror.HasStatus(err, fiber.StatusNotAcceptable))
	})
}

func TestRepository_UpdateAccountWithId(t *testing.T) {
	ctx := context.Background()
	accountRepository := newTestRepository(t, ctx)
	require.NoError(t, accountRepository.InsertAccount(ctx, newTestDocument(TestAccountId, TestEmail)))

	t.Run("happy path", func(t *testing.T) {
		account, err := accountRepository.UpdateAccountWithId(ctx, TestAccountId, &ProfileUpdate{
			DisplayName: "ali",
			WeightKg:    72.5,
			UpdatedAt:   TestUpdatedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, "ali", account.DisplayName)
		assert.Equal(t, 72.5, account.WeightKg)
		assert.Equal(t, TestEmail, account.Email)
	})

	t.Run("when account does not exist should return not found", func(t *testing.T) {
		_, err := accountRepository.UpdateAccountWithId(ctx, "missing-id", &ProfileUpdate{UpdatedAt: TestUpdatedAt})

		assert.True(t, cerror.HasStatus(err, fiber.StatusNotFound))
	})
}

func newTestDocument(accountId, email string) *Document {
	return &Document{
		Id:          accountId,
		Email:       email,
		Password:    "hash",
		DisplayName: "a",
		Role:        KindStandard.Role(),
		VerifyToken: TestVerifyToken,
		CreatedAt:   TestUpdatedAt,
	}
}

func newTestRepository(t *testing.T, ctx context.Context) Repository {
	container := setupMongoDbContainer(t, ctx)
	mongodbUri, err := container.Endpoint(ctx, "mongodb")
	require.NoError(t, err)

	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongodbUri).
		SetAuth(options.Credential{
			Username: TestMongoDbUserName,
			Password: TestMongoDbPassword,
		}))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mongoClient.Disconnect(ctx)
	})

	accountRepository := NewRepository(mongoClient, &config.Config{
		Mongodb: config.MongodbConfig{
			Database: TestMongoDbDatabaseName,
			Collections: map[string]string{
				config.MongodbUserCollection:  TestMongoDbUserCollection,
				config.MongodbAdminCollection: TestMongoDbAdminCollection,
			},
		},
	}, config.MongodbUserCollection)
	require.NoError(t, accountRepository.EnsureIndexes(ctx))

	return accountRepository
}

func setupMongoDbContainer(t *testing.T, ctx context.Context) testcontainers.Container {
	req := testcontainers.ContainerRequest{
		Image: "mongo",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestMongoDbUserName,
			"MONGO_INITDB_ROOT_PASSWORD": TestMongoDbPassword,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	return container
}
