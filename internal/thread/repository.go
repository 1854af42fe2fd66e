package thread

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

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=thread

// Repository persists threads with their embedded message log. Every write is
// a single document operation.
type Repository interface {
	InsertThread(ctx context.Context, thread *Thread) error
	FindThreadWithId(ctx context.Context, threadId string) (*Thread, error)
	FindThreadWithRoomId(ctx context.Context, roomId string) (*Thread, error)
	FindAllThreads(ctx context.Context) ([]*Thread, error)
	AppendMessage(ctx context.Context, roomId string, message *Message, updatedAt int64) error
	MarkMessageDeleted(ctx context.Context, roomId, messageId string, updatedAt int64) error
	DeleteThreadWithId(ctx context.Context, threadId string) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	mongoClient *mongo.Client
	database    string
	collection  string
}

func NewRepository(mongoClient *mongo.Client, cfg *config.Config) Repository {
	return &repository{
		mongoClient: mongoClient,
		database:    cfg.Mongodb.Database,
		collection:  cfg.Mongodb.Collections[config.MongodbThreadCollection],
	}
}

func (r *repository) getCollection() *mongo.Collection {
	return r.mongoClient.
		Database(r.database).
		Collection(r.collection)
}

func (r *repository) InsertThread(ctx context.Context, thread *Thread) error {
	_, err := r.getCollection().InsertOne(ctx, thread)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.Conflict("Thread already exists", zap.String("roomId", thread.RoomId)).Wrap(err)
		}

		return cerror.Internal("error occurred while insert thread").Wrap(err)
	}

	return nil
}

func (r *repository) FindThreadWithId(ctx context.Context, threadId string) (*Thread, error) {
	return r.findOne(ctx, bson.D{{"_id", threadId}})
}

func (r *repository) FindThreadWithRoomId(ctx context.Context, roomId string) (*Thread, error) {
	return r.findOne(ctx, bson.D{{"roomId", roomId}})
}

func (r *repository) findOne(ctx context.Context, filter bson.D) (*Thread, error) {
	var thread Thread

	err := r.getCollection().FindOne(ctx, filter).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("Thread not found")
		}

		return nil, cerror.Internal("error occurred while find thread").Wrap(err)
	}

	return &thread, nil
}

func (r *repository) FindAllThreads(ctx context.Context) ([]*Thread, error) {
	findOptions := options.Find().SetSort(bson.D{{"createdAt", -1}})
	cursor, err := r.getCollection().Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, cerror.Internal("error occurred while find threads").Wrap(err)
	}

	threads := make([]*Thread, 0)
	err = cursor.All(ctx, &threads)
	if err != nil {
		return nil, cerror.Internal("error occurred while decode threads").Wrap(err)
	}

	return threads, nil
}

// AppendMessage pushes onto the message log in one atomic update, so
// concurrent senders never overwrite each other.
func (r *repository) AppendMessage(ctx context.Context, roomId string, message *Message, updatedAt int64) error {
	filter := bson.D{{"roomId", roomId}}
	update := bson.D{
		{"$push", bson.D{{"messages", message}}},
		{"$set", bson.D{{"updatedAt", updatedAt}}},
	}

	result, err := r.getCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.Internal("error occurred while append message", zap.String("roomId", roomId)).Wrap(err)
	}

	if result.MatchedCount == 0 {
		return cerror.NotFound("Thread not found", zap.String("roomId", roomId))
	}

	return nil
}

func (r *repository) MarkMessageDeleted(ctx context.Context, roomId, messageId string, updatedAt int64) error {
	filter := bson.D{
		{"roomId", roomId},
		{"messages._id", messageId},
	}
	update := bson.D{
		{"$set", bson.D{
			{"messages.$.isDeleted", true},
			{"messages.$.message", Tombstone},
			{"updatedAt", updatedAt},
		}},
	}

	result, err := r.getCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.Internal(
			"error occurred while delete message",
			zap.String("roomId", roomId),
			zap.String("messageId", messageId),
		).Wrap(err)
	}

	if result.MatchedCount == 0 {
		return cerror.NotFound(
			"Message not found",
			zap.String("roomId", roomId),
			zap.String("messageId", messageId),
		)
	}

	return nil
}

func (r *repository) DeleteThreadWithId(ctx context.Context, threadId string) error {
	result, err := r.getCollection().DeleteOne(ctx, bson.D{{"_id", threadId}})
	if err != nil {
		return cerror.Internal("error occurred while delete thread", zap.String("threadId", threadId)).Wrap(err)
	}

	if result.DeletedCount == 0 {
		return cerror.NotFound("Thread not found", zap.String("threadId", threadId))
	}

	return nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.getCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{"roomId", 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return cerror.Internal("error occurred while create thread indexes").Wrap(err)
	}

	return nil
}
