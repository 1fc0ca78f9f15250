package favorite

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service handles favorites business logic.
type Service struct {
	repo Repository
}

// NewService creates a new favorites service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddResult reports whether a favorite was created or already present.
// Duplicates are an ordinary outcome surfaced in the response body, not an
// HTTP error.
type AddResult struct {
	InsertedID    primitive.ObjectID
	AlreadyExists bool
}

// Add stores the favorite unless the same user/posting pair exists. The
// existence check and the insert are two store operations and are not
// atomic; a concurrent duplicate slips through and is harmless.
func (s *Service) Add(ctx context.Context, f FavoriteJob) (AddResult, error) {
	if f.UserEmail == "" {
		return AddResult{}, fmt.Errorf("favorite: user email required")
	}
	if f.JobID.IsZero() {
		return AddResult{}, fmt.Errorf("favorite: job id required")
	}

	exists, err := s.repo.Exists(ctx, f.UserEmail, f.JobID)
	if err != nil {
		return AddResult{}, err
	}
	if exists {
		return AddResult{AlreadyExists: true}, nil
	}

	f.AddedAt = time.Now().UTC()
	id, err := s.repo.Insert(ctx, f)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{InsertedID: id}, nil
}

// Exists reports whether the posting is among the user's favorites.
func (s *Service) Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error) {
	return s.repo.Exists(ctx, userEmail, jobID)
}

// ListByUser returns the user's favorites.
func (s *Service) ListByUser(ctx context.Context, userEmail string) ([]FavoriteJob, error) {
	return s.repo.ListByUser(ctx, userEmail)
}

// Remove deletes a favorite by id.
func (s *Service) Remove(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, id)
}
