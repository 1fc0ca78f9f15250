package application

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppliedJob records a submitted application. EmployerEmail and the display
// fields are copied from the posting at apply time so both the applicant
// view and the recruiter view resolve with one predicate each.
type AppliedJob struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail     string             `bson:"user_email" json:"user_email"`
	ApplicantName string             `bson:"applicant_name,omitempty" json:"applicant_name,omitempty"`
	JobID         primitive.ObjectID `bson:"job_id" json:"job_id"`
	EmployerEmail string             `bson:"employer_email" json:"employer_email"`
	CompanyName   string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	JobTitle      string             `bson:"job_title,omitempty" json:"job_title,omitempty"`
	ResumeLink    string             `bson:"resume_link,omitempty" json:"resume_link,omitempty"`
	CoverNote     string             `bson:"cover_note,omitempty" json:"cover_note,omitempty"`
	AppliedAt     time.Time          `bson:"applied_at" json:"applied_at"`
}

// ApplyRequest is the submission payload.
type ApplyRequest struct {
	Email         string `json:"email" binding:"required,email"`
	ApplicantName string `json:"applicant_name"`
	JobID         string `json:"job_id" binding:"required"`
	ResumeLink    string `json:"resume_link"`
	CoverNote     string `json:"cover_note"`
}
