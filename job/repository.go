package job

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound signals that no posting matched the id.
var ErrNotFound = errors.New("job: not found")

// Repository handles data access for job postings.
type Repository interface {
	Find(ctx context.Context, f Filter) ([]Job, error)
	FindPage(ctx context.Context, p Page) ([]Job, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Job, error)
	Insert(ctx context.Context, j Job) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, j Job) (UpdateCounts, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateCounts, error)
	ClearStatus(ctx context.Context, id primitive.ObjectID) (UpdateCounts, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoRepository implements Repository backed by the jobs collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates a Mongo-backed job repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{col: database.Collection("jobs")}
}

// Find returns full documents matching the filter.
func (r *MongoRepository) Find(ctx context.Context, f Filter) ([]Job, error) {
	cursor, err := r.col.Find(ctx, f.Predicate())
	if err != nil {
		return nil, fmt.Errorf("job: find: %w", err)
	}

	jobs := []Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("job: decode find: %w", err)
	}
	return jobs, nil
}

// FindPage returns one projected page of postings.
func (r *MongoRepository) FindPage(ctx context.Context, p Page) ([]Job, error) {
	opts := options.Find().
		SetSkip(p.Skip()).
		SetLimit(p.Limit()).
		SetProjection(ListProjection())

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("job: find page: %w", err)
	}

	jobs := []Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("job: decode page: %w", err)
	}
	return jobs, nil
}

// Count reports the total number of postings.
func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("job: count: %w", err)
	}
	return count, nil
}

// GetByID retrieves a single posting.
func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (Job, error) {
	var j Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Job{}, ErrNotFound
		}
		return Job{}, fmt.Errorf("job: get by id: %w", err)
	}
	return j, nil
}

// Insert stores a new posting.
func (r *MongoRepository) Insert(ctx context.Context, j Job) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("job: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Replace overwrites a posting's fields under the given id, inserting when
// no document matches. This is the one write that keeps its upsert
// contract; id-keyed status mutations below fail on absent documents.
func (r *MongoRepository) Replace(ctx context.Context, id primitive.ObjectID, j Job) (UpdateCounts, error) {
	j.ID = id
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, j, options.Replace().SetUpsert(true))
	if err != nil {
		return UpdateCounts{}, fmt.Errorf("job: replace: %w", err)
	}
	return UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// SetStatus writes the status field of an existing posting.
func (r *MongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateCounts, error) {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"status": status}}, "set status")
}

// ClearStatus removes the status field, returning the posting to general
// listing. Absent fields stay absent, so the call is idempotent.
func (r *MongoRepository) ClearStatus(ctx context.Context, id primitive.ObjectID) (UpdateCounts, error) {
	return r.updateByID(ctx, id, bson.M{"$unset": bson.M{"status": ""}}, "clear status")
}

// Delete removes a posting and reports how many documents were deleted.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("job: delete: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M, op string) (UpdateCounts, error) {
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return UpdateCounts{}, fmt.Errorf("job: %s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return UpdateCounts{}, ErrNotFound
	}
	return UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
