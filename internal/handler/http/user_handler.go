package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/dto"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/middleware"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
)

type UserHandler struct {
	users contract.IUserRepository
	log   logger.Logger
}

func NewUserHandler(users contract.IUserRepository, log logger.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.users.GetUsers(c.Request.Context())
	if err != nil {
		h.log.Errorf("fetching users: %v", err)
		apperror.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	user, err := h.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if user == nil {
		apperror.Respond(c, apperror.NotFound("User", id))
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id. The gatekeeper chain has already
// confirmed the target exists, rejected no-op updates and validated the body.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.UpdateUserRequest
	if !BindGate(c, &req) {
		return
	}

	matched, err := h.users.UpdateUserByID(c.Request.Context(), rc.ParamID, req.ToUpdates())
	if err != nil {
		h.log.Errorf("updating user %s: %v", rc.ParamID, err)
		apperror.Respond(c, err)
		return
	}
	if !matched {
		apperror.Respond(c, apperror.NotFound("User", rc.ParamID))
		return
	}
	MessageHandler(c, http.StatusOK, "User updated")
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.users.DeleteUserByID(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("deleting user %s: %v", id, err)
		apperror.Respond(c, err)
		return
	}
	if !deleted {
		apperror.Respond(c, apperror.NotFound("User", id))
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}
