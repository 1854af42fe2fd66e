package account

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=account

type Repository interface {
	InsertAccount(ctx context.Context, account *Document) error
	FindAccountWithEmail(ctx context.Context, email string) (*Document, error)
	FindAccountWithId(ctx context.Context, accountId string) (*Document, error)
	ActivateAccount(ctx context.Context, accountId, verifyToken string, updatedAt int64) (*Document, error)
	UpdateAccountWithId(ctx context.Context, accountId string, update *ProfileUpdate) (*Document, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	mongoClient *mongo.Client
	database    string
	collection  string
}

// NewRepository binds a repository to one account collection. collectionKey
// is config.MongodbUserCollection or config.MongodbAdminCollection.
func NewRepository(mongoClient *mongo.Client, cfg *config.Config, collectionKey string) Repository {
	return &repository{
		mongoClient: mongoClient,
		database:    cfg.Mongodb.Database,
		collection:  cfg.Mongodb.Collections[collectionKey],
	}
}

func (r *repository) getCollection() *mongo.Collection {
	return r.mongoClient.
		Database(r.database).
		Collection(r.collection)
}

func (r *repository) InsertAccount(ctx context.Context, account *Document) error {
	_, err := r.getCollection().InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.Conflict(
				"Email already exists",
				zap.String("collection", r.collection),
			).Wrap(err)
		}

		return cerror.Internal(
			"error occurred while insert account",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return nil
}

func (r *repository) FindAccountWithEmail(ctx context.Context, email string) (*Document, error) {
	var account Document

	filter := bson.D{{"email", email}}
	err := r.getCollection().FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("Account not found")
		}

		return nil, cerror.Internal(
			"error occurred while find account with email",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return &account, nil
}

func (r *repository) FindAccountWithId(ctx context.Context, accountId string) (*Document, error) {
	var account Document

	filter := bson.D{{"_id", accountId}}
	err := r.getCollection().FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("Account not found")
		}

		return nil, cerror.Internal(
			"error occurred while find account with id",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return &account, nil
}

// ActivateAccount matches only an inactive account holding exactly the given
// token, so two concurrent verifications cannot both succeed.
func (r *repository) ActivateAccount(
	ctx context.Context,
	accountId, verifyToken string,
	updatedAt int64,
) (*Document, error) {
	var account Document

	filter := bson.D{
		{"_id", accountId},
		{"isActive", false},
		{"verifyToken", verifyToken},
	}
	update := bson.D{
		{"$set", bson.D{{"isActive", true}, {"updatedAt", updatedAt}}},
		{"$unset", bson.D{{"verifyToken", ""}}},
	}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := r.getCollection().FindOneAndUpdate(ctx, filter, update, findOneAndUpdateOptions).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotAcceptable("Your account is already active!")
		}

		return nil, cerror.Internal(
			"error occurred while activate account",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return &account, nil
}

func (r *repository) UpdateAccountWithId(
	ctx context.Context,
	accountId string,
	profileUpdate *ProfileUpdate,
) (*Document, error) {
	var account Document

	filter := bson.D{{"_id", accountId}}
	update := bson.D{{"$set", profileUpdate}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := r.getCollection().FindOneAndUpdate(ctx, filter, update, findOneAndUpdateOptions).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("Account not found")
		}

		return nil, cerror.Internal(
			"error occurred while update account",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return &account, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.getCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{"email", 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return cerror.Internal(
			"error occurred while create account indexes",
			zap.String("collection", r.collection),
		).Wrap(err)
	}

	return nil
}
