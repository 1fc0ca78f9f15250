// Package category exposes the read-only job category list. There is no
// write surface; the collection is seeded out of band.
package category

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Logo string             `bson:"logo,omitempty" json:"logo,omitempty"`
}

type Repository interface {
	List(ctx context.Context) ([]Category, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{col: database.Collection("categories")}
}

func (r *MongoRepository) List(ctx context.Context) ([]Category, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("category: list: %w", err)
	}

	categories := []Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("category: decode list: %w", err)
	}
	return categories, nil
}
