package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User mirrors a document in the users collection. Password holds a bcrypt
// hash and is absent entirely for social-login accounts, so the field is
// optional per-record rather than mandatory-empty.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// RegisterRequest contains registration data supplied by callers. Password
// is optional: social logins register with identity fields only.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func isValidRole(role string) bool {
	switch role {
	case RoleUser, RoleRecruiter, RoleAdmin:
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	return status == StatusActive || status == StatusBlocked
}
