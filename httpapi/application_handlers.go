package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/application"
)

// ApplicationHandler serves submissions and the applicant/recruiter views.
type ApplicationHandler struct {
	applications *application.Service
}

// Apply is POST /jobs-apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req application.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.JobID); err != nil {
		badRequest(c, "invalid job_id")
		return
	}

	id, err := h.applications.Apply(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, application.ErrJobNotFound) {
			badRequest(c, "job not found")
			return
		}
		internalError(c, "apply", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// ListOwn is GET /applied-jobs?email=, self-scoped upstream.
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	applications, err := h.applications.ListByApplicant(c.Request.Context(), c.Query("email"))
	if err != nil {
		internalError(c, "list applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListForEmployer is GET /resumes?email=&jobId=, the recruiter's inbox of
// applications to their postings, optionally narrowed to one posting.
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	jobID := primitive.NilObjectID
	if raw := c.Query("jobId"); raw != "" {
		parsed, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			badRequest(c, "invalid jobId")
			return
		}
		jobID = parsed
	}

	applications, err := h.applications.ListByEmployer(c.Request.Context(), c.Query("email"), jobID)
	if err != nil {
		internalError(c, "list resumes", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Exists is GET /applied-exist?email=&id=.
func (h *ApplicationHandler) Exists(c *gin.Context) {
	jobID, ok := queryID(c, "id")
	if !ok {
		return
	}

	exists, err := h.applications.Exists(c.Request.Context(), c.Query("email"), jobID)
	if err != nil {
		internalError(c, "application exists", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": exists})
}
