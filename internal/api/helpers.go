package api

import (
	"errors"
	"log"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"pulsetrack-backend-go/internal/core"
)

// currentUserID retrieves the authenticated user's ID from the Gin context
// (populated by the auth middleware). It writes the error response itself
// and returns false when the ID is missing or malformed.
func currentUserID(c *gin.Context) (string, bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		log.Println("Handler Error: userID not found in context. Auth middleware might not have run or failed.")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return "", false
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		log.Printf("Handler Error: userID in context is not a valid string or is empty. Value: %v", rawUserID)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return "", false
	}
	return userID, true
}

// mapErrorToStatus maps errors from the core services to HTTP status codes
// and ErrorResponse bodies. Validation failures stay field-scoped; everything
// unexpected is logged server-side and answered with a generic 500.
func mapErrorToStatus(c *gin.Context, err error) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, core.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProfileNotFound.Error()})
	case errors.Is(err, core.ErrProfileAlreadyComplete):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrProfileAlreadyComplete.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// avatarInitial returns the uppercased first letter of a display name.
func avatarInitial(displayName string) string {
	for _, r := range displayName {
		return string(unicode.ToUpper(r))
	}
	return ""
}
