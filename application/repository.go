package application

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles data access for applications.
type Repository interface {
	Insert(ctx context.Context, a AppliedJob) (primitive.ObjectID, error)
	Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error)
	ListByApplicant(ctx context.Context, userEmail string) ([]AppliedJob, error)
	ListByEmployer(ctx context.Context, employerEmail string, jobID primitive.ObjectID) ([]AppliedJob, error)
}

// MongoRepository implements Repository backed by the appliedjobs collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates a Mongo-backed applications repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{col: database.Collection("appliedjobs")}
}

// Insert stores a new application.
func (r *MongoRepository) Insert(ctx context.Context, a AppliedJob) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("application: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Exists reports whether the user already applied to the posting.
func (r *MongoRepository) Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx,
		bson.M{"user_email": userEmail, "job_id": jobID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("application: exists: %w", err)
	}
	return count > 0, nil
}

// ListByApplicant returns the user's own applications.
func (r *MongoRepository) ListByApplicant(ctx context.Context, userEmail string) ([]AppliedJob, error) {
	return r.find(ctx, bson.M{"user_email": userEmail})
}

// ListByEmployer returns applications to postings owned by the recruiter,
// optionally narrowed to one posting.
func (r *MongoRepository) ListByEmployer(ctx context.Context, employerEmail string, jobID primitive.ObjectID) ([]AppliedJob, error) {
	query := bson.M{"employer_email": employerEmail}
	if !jobID.IsZero() {
		query["job_id"] = jobID
	}
	return r.find(ctx, query)
}

func (r *MongoRepository) find(ctx context.Context, query bson.M) ([]AppliedJob, error) {
	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("application: find: %w", err)
	}

	applications := []AppliedJob{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("application: decode find: %w", err)
	}
	return applications, nil
}
