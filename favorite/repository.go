package favorite

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles data access for favorites.
type Repository interface {
	Insert(ctx context.Context, f FavoriteJob) (primitive.ObjectID, error)
	Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error)
	ListByUser(ctx context.Context, userEmail string) ([]FavoriteJob, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoRepository implements Repository backed by the favouritejobs
// collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates a Mongo-backed favorites repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{col: database.Collection("favouritejobs")}
}

// Insert stores a new favorite.
func (r *MongoRepository) Insert(ctx context.Context, f FavoriteJob) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("favorite: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Exists reports whether the user already favorited the posting.
func (r *MongoRepository) Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx,
		bson.M{"user_email": userEmail, "job_id": jobID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("favorite: exists: %w", err)
	}
	return count > 0, nil
}

// ListByUser returns the user's favorites.
func (r *MongoRepository) ListByUser(ctx context.Context, userEmail string) ([]FavoriteJob, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, fmt.Errorf("favorite: list: %w", err)
	}

	favorites := []FavoriteJob{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("favorite: decode list: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite by id and reports how many were deleted.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("favorite: delete: %w", err)
	}
	return res.DeletedCount, nil
}
