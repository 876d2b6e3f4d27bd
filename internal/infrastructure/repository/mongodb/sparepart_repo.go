package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type MongoSparePartRepository struct {
	collection *mongo.Collection
}

func NewMongoSparePartRepository(collection *mongo.Collection) *MongoSparePartRepository {
	return &MongoSparePartRepository{collection: collection}
}

func (r *MongoSparePartRepository) GetSpareParts(ctx context.Context) ([]entity.SparePart, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	parts := []entity.SparePart{}
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *MongoSparePartRepository) GetSparePartByID(ctx context.Context, id string) (*entity.SparePart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.InvalidID()
	}
	var part entity.SparePart
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&part); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &part, nil
}

func (r *MongoSparePartRepository) CreateSparePart(ctx context.Context, part *entity.SparePart) (string, error) {
	if part.ID.IsZero() {
		part.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, part); err != nil {
		return "", err
	}
	return part.ID.Hex(), nil
}

func (r *MongoSparePartRepository) UpdateSparePartByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
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

func (r *MongoSparePartRepository) DeleteSparePartByID(ctx context.Context, id string) (bool, error) {
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

// CountExistingByIDs counts catalog documents whose _id is in ids. Invalid hex
// strings are rejected up front so the count can be compared one-to-one with
// the requested ids.
func (r *MongoSparePartRepository) CountExistingByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, apperror.InvalidID()
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}
	return r.collection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": oids}})
}
