// Package response is the shared API envelope every seatwise handler
// responds through.
package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope with the given status and payload.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
