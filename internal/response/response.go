package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/routesketch/service-planner/internal/domain"
)

// Success writes a 200 response with the standard data envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the standard data envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a domain error to its HTTP status. Non-domain errors become 500s
// without leaking details.
func Error(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.KindPrecondition:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
