package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/favorite"
)

// FavoriteHandler serves the favorites surface.
type FavoriteHandler struct {
	favorites *favorite.Service
}

type favoritePayload struct {
	Email       string `json:"email" binding:"required,email"`
	JobID       string `json:"job_id" binding:"required"`
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	Deadline    string `json:"deadline"`
}

// Add is POST /favourite. A duplicate is an ordinary success carrying a
// message field.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var payload favoritePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	jobID, err := primitive.ObjectIDFromHex(payload.JobID)
	if err != nil {
		badRequest(c, "invalid job_id")
		return
	}

	res, err := h.favorites.Add(c.Request.Context(), favorite.FavoriteJob{
		UserEmail:   payload.Email,
		JobID:       jobID,
		CompanyName: payload.CompanyName,
		JobTitle:    payload.JobTitle,
		Deadline:    payload.Deadline,
	})
	if err != nil {
		internalError(c, "add favorite", err)
		return
	}

	if res.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"message": "already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID.Hex()})
}

// ListOwn is GET /favourite?email=, self-scoped upstream.
func (h *FavoriteHandler) ListOwn(c *gin.Context) {
	favorites, err := h.favorites.ListByUser(c.Request.Context(), c.Query("email"))
	if err != nil {
		internalError(c, "list favorites", err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// Exists is GET /fav-exist?email=&id=. The reply is only a boolean flag,
// never the document.
func (h *FavoriteHandler) Exists(c *gin.Context) {
	jobID, ok := queryID(c, "id")
	if !ok {
		return
	}

	exists, err := h.favorites.Exists(c.Request.Context(), c.Query("email"), jobID)
	if err != nil {
		internalError(c, "favorite exists", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": exists})
}

// Remove is DELETE /favourite/:id.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.favorites.Remove(c.Request.Context(), id)
	if err != nil {
		internalError(c, "remove favorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
