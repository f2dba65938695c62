package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Message writes a plain {"message": ...} body with the given status.
// Success and client-error bodies share this shape.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ServerError logs the underlying error and writes a generic 500. The
// cause never reaches the client.
func ServerError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// BindError translates a gin binding failure into a structured 400.
// Validation failures name the offending fields instead of leaking the
// validator's internal formatting.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
			case "max":
				fields = append(fields, fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param()))
			default:
				fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": strings.Join(fields, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
}
