package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// internalError hides store failure detail from callers. The cause is
// logged with the request id for correlation; the body stays generic.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("[%s] %s: %v", RequestID(c), op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

// pathID parses the :id path parameter. Identifiers are opaque 24-character
// hex strings; anything else is a 400 before any store call happens.
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryID parses an id carried as a query parameter.
func queryID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Query(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
