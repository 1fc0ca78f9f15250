package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound signals that the user does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("user: email already exists")
)

// Repository handles data access for user records.
type Repository interface {
	Insert(ctx context.Context, u User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (UpdateCounts, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateCounts, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// UpdateCounts is the store's write descriptor surfaced to callers.
type UpdateCounts struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// MongoRepository implements Repository backed by the users collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates a Mongo-backed user repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{col: database.Collection("users")}
}

// EnsureIndexes creates the unique email index. Without it the duplicate
// guard is only the service's read-then-insert pre-check, and a concurrent
// registration race would store a second document. Called once at bootstrap;
// creating an index that already exists is a no-op.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("user: ensure indexes: %w", err)
	}
	return nil
}

// Insert stores a new user document.
func (r *MongoRepository) Insert(ctx context.Context, u User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		return primitive.NilObjectID, fmt.Errorf("user: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// GetByEmail retrieves a user by email address.
func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("user: get by email: %w", err)
	}
	return u, nil
}

// List returns every stored user.
func (r *MongoRepository) List(ctx context.Context) ([]User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("user: list: %w", err)
	}

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("user: decode list: %w", err)
	}
	return users, nil
}

// SetRole updates the role of an existing user. A missing document is
// ErrNotFound; the update never inserts.
func (r *MongoRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (UpdateCounts, error) {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"role": role}}, "set role")
}

// SetStatus updates the status of an existing user.
func (r *MongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateCounts, error) {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"status": status}}, "set status")
}

// Delete removes a user document and reports how many were deleted.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("user: delete: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M, op string) (UpdateCounts, error) {
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return UpdateCounts{}, fmt.Errorf("user: %s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return UpdateCounts{}, ErrNotFound
	}
	return UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
