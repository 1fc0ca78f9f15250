package job

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusHot marks a promoted posting. Regular postings carry no status
// field at all, so clearing the flag unsets the field rather than writing
// an empty string.
const StatusHot = "hot"

// SalaryRange is the advertised compensation band.
type SalaryRange struct {
	Min      int    `bson:"min" json:"min"`
	Max      int    `bson:"max" json:"max"`
	Currency string `bson:"currency,omitempty" json:"currency,omitempty"`
}

// Job mirrors a document in the jobs collection.
type Job struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName    string             `bson:"company_name" json:"company_name"`
	CompanyLogo    string             `bson:"company_logo,omitempty" json:"company_logo,omitempty"`
	Title          string             `bson:"job_title" json:"job_title"`
	Description    string             `bson:"description" json:"description"`
	Location       string             `bson:"location" json:"location"`
	Experience     string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Qualifications string             `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Salary         SalaryRange        `bson:"salary_range" json:"salary_range"`
	Deadline       string             `bson:"deadline" json:"deadline"`
	Category       string             `bson:"category" json:"category"`
	WorkMode       string             `bson:"work_mode,omitempty" json:"work_mode,omitempty"`
	JobType        string             `bson:"job_type,omitempty" json:"job_type,omitempty"`
	EmployerEmail  string             `bson:"employer_email" json:"employer_email"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	PostedAt       time.Time          `bson:"posted_at" json:"posted_at"`
}

// UpdateCounts is the store's write descriptor surfaced to callers.
type UpdateCounts struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}
