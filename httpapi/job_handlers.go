package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard/category"
	"jobboard/job"
)

// JobHandler serves the job listing, search and admin mutation surface,
// plus the read-only category list.
type JobHandler struct {
	jobs       job.Repository
	categories category.Repository
}

type jobPayload struct {
	CompanyName    string          `json:"company_name" binding:"required"`
	CompanyLogo    string          `json:"company_logo"`
	Title          string          `json:"job_title" binding:"required"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	Experience     string          `json:"experience"`
	Qualifications string          `json:"qualifications"`
	Salary         job.SalaryRange `json:"salary_range"`
	Deadline       string          `json:"deadline"`
	Category       string          `json:"category"`
	WorkMode       string          `json:"work_mode"`
	JobType        string          `json:"job_type"`
	EmployerEmail  string          `json:"employer_email" binding:"required,email"`
}

func (p jobPayload) toJob() job.Job {
	return job.Job{
		CompanyName:    p.CompanyName,
		CompanyLogo:    p.CompanyLogo,
		Title:          p.Title,
		Description:    p.Description,
		Location:       p.Location,
		Experience:     p.Experience,
		Qualifications: p.Qualifications,
		Salary:         p.Salary,
		Deadline:       p.Deadline,
		Category:       p.Category,
		WorkMode:       p.WorkMode,
		JobType:        p.JobType,
		EmployerEmail:  p.EmployerEmail,
	}
}

// ListCategories is GET /categories.
func (h *JobHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		internalError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListHot is GET /hotjobs.
func (h *JobHandler) ListHot(c *gin.Context) {
	jobs, err := h.jobs.Find(c.Request.Context(), job.Filter{Status: job.StatusHot})
	if err != nil {
		internalError(c, "list hot jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Count is GET /jobsCount.
func (h *JobHandler) Count(c *gin.Context) {
	count, err := h.jobs.Count(c.Request.Context())
	if err != nil {
		internalError(c, "count jobs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListPaginated is GET /jobs/paginated?page=&size=. Non-numeric or negative
// paging input is rejected outright rather than silently treated as zero,
// and so is a zero size: the store reads a limit of 0 as "no limit", which
// would turn an empty page request into a full collection scan.
func (h *JobHandler) ListPaginated(c *gin.Context) {
	page, ok := pagingParam(c, "page", "0", 0)
	if !ok {
		return
	}
	size, ok := pagingParam(c, "size", "10", 1)
	if !ok {
		return
	}

	jobs, err := h.jobs.FindPage(c.Request.Context(), job.Page{Index: page, Size: size})
	if err != nil {
		internalError(c, "list paginated jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListByCategory is GET /jobs?category=. An absent category returns the
// full set.
func (h *JobHandler) ListByCategory(c *gin.Context) {
	jobs, err := h.jobs.Find(c.Request.Context(), job.Filter{Category: c.Query("category")})
	if err != nil {
		internalError(c, "list jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SearchByTitle is GET /search?title=. Matching is case-insensitive
// full-string equality, not substring search.
func (h *JobHandler) SearchByTitle(c *gin.Context) {
	jobs, err := h.jobs.Find(c.Request.Context(), job.Filter{Title: c.Query("title")})
	if err != nil {
		internalError(c, "search jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListMine is GET /my-jobs?email=, the recruiter's own postings.
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobs.Find(c.Request.Context(), job.Filter{EmployerEmail: c.Query("email")})
	if err != nil {
		internalError(c, "list my jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetByID is GET /job/:id. An absent posting is an empty result, not an
// error: the body is null with a success status.
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	posting, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		internalError(c, "get job", err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Create is POST /job.
func (h *JobHandler) Create(c *gin.Context) {
	var payload jobPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	posting := payload.toJob()
	posting.PostedAt = time.Now().UTC()

	id, err := h.jobs.Insert(c.Request.Context(), posting)
	if err != nil {
		internalError(c, "create job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// Replace is PUT /jobs/:id, a full field replace that keeps the upsert
// contract: an unknown id creates the document.
func (h *JobHandler) Replace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload jobPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	counts, err := h.jobs.Replace(c.Request.Context(), id, payload.toJob())
	if err != nil {
		internalError(c, "replace job", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// MarkHot is PATCH /jobs/hot/:id.
func (h *JobHandler) MarkHot(c *gin.Context) {
	h.patchStatus(c, true)
}

// MarkGeneral is PATCH /jobs/gen/:id, clearing the hot flag.
func (h *JobHandler) MarkGeneral(c *gin.Context) {
	h.patchStatus(c, false)
}

func (h *JobHandler) patchStatus(c *gin.Context, hot bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var (
		counts job.UpdateCounts
		err    error
	)
	if hot {
		counts, err = h.jobs.SetStatus(c.Request.Context(), id, job.StatusHot)
	} else {
		counts, err = h.jobs.ClearStatus(c.Request.Context(), id)
	}
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, "patch job status", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Delete is DELETE /jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.jobs.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, "delete job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

func pagingParam(c *gin.Context, name, fallback string, floor int64) (int64, bool) {
	v, err := strconv.ParseInt(c.DefaultQuery(name, fallback), 10, 64)
	if err != nil || v < floor {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}
