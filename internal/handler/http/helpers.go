package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/dto"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/middleware"
)

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// CreatedHandler shapes the {message, id} body for successful creates.
func CreatedHandler(c *gin.Context, message, id string) {
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: message, ID: id})
}

// BindGate decodes the body captured by the gatekeeper chain into a typed
// request. The chain has already validated shape and fields, so a failure
// here means the payload was structurally unusable.
func BindGate(c *gin.Context, req interface{}) bool {
	rc := middleware.Gate(c)
	if err := json.Unmarshal(rc.RawBody, req); err != nil {
		apperror.Respond(c, apperror.BadRequest("Invalid JSON payload."))
		return false
	}
	return true
}
