package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/eventplanner/event-orders-api/services"
	"github.com/eventplanner/event-orders-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

func respondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"status": statusSuccess,
		"data":   data,
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"message": message,
	})
}

// respondError writes the error envelope for err. Unclassified errors are
// logged with the request line and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var uploadErr *utils.FileUploadError
	if errors.As(err, &uploadErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  statusError,
			"code":    uploadErr.Code,
			"message": uploadErr.Message,
		})
		return
	}

	be := services.ClassifyStoreError(err)
	if be.Kind == services.KindUnexpected {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, be.Err)
	}

	c.JSON(be.StatusCode, gin.H{
		"status":  statusError,
		"code":    be.Kind,
		"message": be.Message,
	})
}

// respondValidation reports a request body or query that failed binding
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  statusError,
		"code":    services.KindInvalidRequest,
		"message": "Invalid request data",
		"details": err.Error(),
	})
}
