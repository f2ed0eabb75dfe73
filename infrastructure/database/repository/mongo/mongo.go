package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"idguard.io/infrastructure/logger"
)

func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T, opts ...*options.InsertOneOptions) (*T, error) {
	parsed := payload.ParseModel().(*T)
	_, err := repo.Model.InsertOne(ctx, parsed, opts...)
	if err != nil {
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return parsed, nil
}

func (repo *MongoRepository[T]) FindByID(id string, opts ...*options.FindOneOptions) (*T, error) {
	ctx := context.Background()
	var result T
	err := repo.Model.FindOne(ctx, bson.M{"_id": id}, opts...).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindByID", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindOneByFilter(filter map[string]interface{}, opts ...*options.FindOneOptions) (*T, error) {
	ctx := context.Background()
	var result T
	err := repo.Model.FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindMany(filter map[string]interface{}, opts ...*options.FindOptions) (*[]T, error) {
	ctx := context.Background()
	cursor, err := repo.Model.Find(ctx, filter, opts...)
	if err != nil {
		logger.Error("mongo error occured while running FindMany", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		logger.Error("mongo error occured while decoding FindMany results", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &results, nil
}

func (repo *MongoRepository[T]) CountDocs(filter map[string]interface{}) (int64, error) {
	ctx := context.Background()
	count, err := repo.Model.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("mongo error occured while running CountDocs", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return 0, err
	}
	return count, nil
}

// UpdateWithOperators runs a raw update document against the filter for
// callers that need operators beyond $set, array updates especially.
func (repo *MongoRepository[T]) UpdateWithOperators(filter map[string]interface{}, update map[string]interface{}, opts ...*options.UpdateOptions) (bool, error) {
	ctx := context.Background()
	result, err := repo.Model.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		logger.Error("mongo error occured while running UpdateWithOperators", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return false, err
	}
	return result.ModifiedCount > 0 || result.UpsertedCount > 0, nil
}
