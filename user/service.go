package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is deliberately above bcrypt's default so offline cracking of a
// leaked hash stays expensive.
const hashCost = 13

// ErrInvalidRole signals a role value outside user, recruiter, admin.
// Role input arrives from clients, so the transport maps this to a bad
// request rather than a server failure.
var ErrInvalidRole = errors.New("user: invalid role")

// Service handles user account business logic.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterResult reports whether a record was created or the email was
// already present. Duplicate registration is an ordinary outcome, not an
// error: the client re-posts the profile on every social login.
type RegisterResult struct {
	InsertedID    primitive.ObjectID
	AlreadyExists bool
}

// Register stores a new user unless the email is already taken. A supplied
// password is bcrypt-hashed before storage; when absent the stored document
// carries no password field at all.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	if req.Email == "" {
		return RegisterResult{}, fmt.Errorf("user: email is required")
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return RegisterResult{AlreadyExists: true}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return RegisterResult{}, err
	}

	u := User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      RoleUser,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if req.Role != "" {
		if !isValidRole(req.Role) {
			return RegisterResult{}, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
		}
		u.Role = req.Role
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
		if err != nil {
			return RegisterResult{}, fmt.Errorf("user: hash password: %w", err)
		}
		u.Password = string(hash)
	}

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		// Lost the race against a concurrent registration for the same
		// email; same outcome as the pre-check.
		if errors.Is(err, ErrDuplicateEmail) {
			return RegisterResult{AlreadyExists: true}, nil
		}
		return RegisterResult{}, err
	}

	return RegisterResult{InsertedID: id}, nil
}

// GetByEmail retrieves a single user record.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// SetRole transitions an existing user to the given role.
func (s *Service) SetRole(ctx context.Context, id primitive.ObjectID, role string) (UpdateCounts, error) {
	if !isValidRole(role) {
		return UpdateCounts{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.repo.SetRole(ctx, id, role)
}

// SetStatus transitions an existing user to the given status.
func (s *Service) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateCounts, error) {
	if !isValidStatus(status) {
		return UpdateCounts{}, fmt.Errorf("user: invalid status %q", status)
	}
	return s.repo.SetStatus(ctx, id, status)
}

// Delete removes a user record.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, id)
}
