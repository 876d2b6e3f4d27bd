package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type MongoCarRepository struct {
	collection *mongo.Collection
}

func NewMongoCarRepository(collection *mongo.Collection) *MongoCarRepository {
	return &MongoCarRepository{collection: collection}
}

func (r *MongoCarRepository) GetCars(ctx context.Context) ([]entity.Car, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cars := []entity.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *MongoCarRepository) GetCarByID(ctx context.Context, id string) (*entity.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.InvalidID()
	}
	var car entity.Car
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *MongoCarRepository) CreateCar(ctx context.Context, car *entity.Car) (string, error) {
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, car); err != nil {
		return "", err
	}
	return car.ID.Hex(), nil
}

func (r *MongoCarRepository) UpdateCarByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperror.InvalidID()
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoCarRepository) DeleteCarByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperror.InvalidID()
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
