package favorite

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteJob associates a user with a posting they bookmarked. Display
// fields are denormalized at save time so listing favorites stays a single
// query.
type FavoriteJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail   string             `bson:"user_email" json:"user_email"`
	JobID       primitive.ObjectID `bson:"job_id" json:"job_id"`
	CompanyName string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	JobTitle    string             `bson:"job_title,omitempty" json:"job_title,omitempty"`
	Deadline    string             `bson:"deadline,omitempty" json:"deadline,omitempty"`
	AddedAt     time.Time          `bson:"added_at" json:"added_at"`
}
