package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/job"
)

// ErrJobNotFound signals that the application references a posting that does
// not exist.
var ErrJobNotFound = errors.New("application: job not found")

// JobSource resolves the posting an application refers to.
type JobSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (job.Job, error)
}

// Service handles application business logic.
type Service struct {
	repo Repository
	jobs JobSource
}

// NewService creates a new applications service.
func NewService(repo Repository, jobs JobSource) *Service {
	return &Service{repo: repo, jobs: jobs}
}

// Apply records an application against an existing posting, copying the
// employer email and display fields from it. The posting read and the
// application insert are separate store operations; a posting deleted in
// between leaves a dangling but harmless application.
func (s *Service) Apply(ctx context.Context, req ApplyRequest) (primitive.ObjectID, error) {
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("application: invalid job id %q", req.JobID)
	}

	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return primitive.NilObjectID, ErrJobNotFound
		}
		return primitive.NilObjectID, err
	}

	return s.repo.Insert(ctx, AppliedJob{
		UserEmail:     req.Email,
		ApplicantName: req.ApplicantName,
		JobID:         jobID,
		EmployerEmail: posting.EmployerEmail,
		CompanyName:   posting.CompanyName,
		JobTitle:      posting.Title,
		ResumeLink:    req.ResumeLink,
		CoverNote:     req.CoverNote,
		AppliedAt:     time.Now().UTC(),
	})
}

// Exists reports whether the user already applied to the posting.
func (s *Service) Exists(ctx context.Context, userEmail string, jobID primitive.ObjectID) (bool, error) {
	return s.repo.Exists(ctx, userEmail, jobID)
}

// ListByApplicant returns the user's own applications.
func (s *Service) ListByApplicant(ctx context.Context, userEmail string) ([]AppliedJob, error) {
	return s.repo.ListByApplicant(ctx, userEmail)
}

// ListByEmployer returns applications to the recruiter's postings.
func (s *Service) ListByEmployer(ctx context.Context, employerEmail string, jobID primitive.ObjectID) ([]AppliedJob, error) {
	return s.repo.ListByEmployer(ctx, employerEmail, jobID)
}
