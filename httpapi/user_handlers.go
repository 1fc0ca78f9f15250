package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/user"
)

// UserHandler serves registration, lookup and the admin account surface.
type UserHandler struct {
	users *user.Service
}

// Register is POST /user. Registering an email that already exists is an
// ordinary success carrying a message field; callers inspect the body, not
// the status code.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	res, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidRole) {
			badRequest(c, "invalid role")
			return
		}
		internalError(c, "register user", err)
		return
	}

	if res.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID.Hex()})
}

// GetByEmail is GET /user?email=. An unknown email is an empty result, not
// an error.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	u, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		internalError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// List is GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		internalError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Block is PATCH /user/block/:id.
func (h *UserHandler) Block(c *gin.Context) {
	h.setStatus(c, user.StatusBlocked)
}

// Activate is PATCH /user/active/:id.
func (h *UserHandler) Activate(c *gin.Context) {
	h.setStatus(c, user.StatusActive)
}

// MakeAdmin is PATCH /users/admin/:id.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.setRole(c, user.RoleAdmin)
}

// MakeRecruiter is PATCH /users/recruiter/:id.
func (h *UserHandler) MakeRecruiter(c *gin.Context) {
	h.setRole(c, user.RoleRecruiter)
}

// MakeUser is PATCH /users/user/:id.
func (h *UserHandler) MakeUser(c *gin.Context) {
	h.setRole(c, user.RoleUser)
}

// Delete is DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

func (h *UserHandler) setStatus(c *gin.Context, status string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	counts, err := h.users.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, "set user status", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *UserHandler) setRole(c *gin.Context, role string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	counts, err := h.users.SetRole(c.Request.Context(), id, role)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, "set user role", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
