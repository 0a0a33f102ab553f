package repository

import (
	"context"
	"strings"

	"loanlink/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository[T any] struct {
	collection interfaces.MongoRepositoryInterface
}

func NewMongoRepository[T any](collection interfaces.MongoRepositoryInterface) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection}
}

func (r *MongoRepository[T]) Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {

	if result, err := r.collection.InsertOne(ctx, document); err != nil {
		return nil, err
	} else {
		return result, nil
	}

}

// Read a document by filter
func (r *MongoRepository[T]) FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (T, error) {

	var result T

	if err := r.collection.FindOne(ctx, filter, opt).Decode(&result); err != nil {
		return result, err
	}

	return result, nil

}

// Find returns every matching document. The slice is never nil.
func (r *MongoRepository[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {

	if cursor, err := r.collection.Find(ctx, filter, opts...); err != nil {
		return nil, err
	} else {
		defer func() {
			if err := cursor.Close(ctx); err != nil {
				_ = err
			}
		}()

		results := make([]T, 0)
		for cursor.Next(ctx) {
			var entity T
			if err := cursor.Decode(&entity); err != nil {
				return nil, err
			}
			results = append(results, entity)
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

// UpdateOne patches at most one document. Plain field maps are wrapped in $set.
func (r *MongoRepository[T]) UpdateOne(
	ctx context.Context,
	filter interface{},
	update interface{},
	opts ...*options.UpdateOptions,
) (*mongo.UpdateResult, error) {

	if !isOperatorDocument(update) {
		update = bson.M{"$set": update}
	}

	if result, err := r.collection.UpdateOne(ctx, filter, update, opts...); err != nil {
		return nil, err
	} else {
		return result, nil
	}

}

// Delete a document
func (r *MongoRepository[T]) Delete(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {

	if result, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return nil, err
	} else {
		return result, nil
	}
}

// isOperatorDocument reports whether every top level key is an update operator such as $set.
func isOperatorDocument(update interface{}) bool {
	var keys []string
	switch u := update.(type) {
	case bson.M:
		for k := range u {
			keys = append(keys, k)
		}
	case bson.D:
		for _, e := range u {
			keys = append(keys, e.Key)
		}
	default:
		return false
	}

	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}
