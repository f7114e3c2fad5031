package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// UserRequest is the client-writable user payload. Pointer fields let the
// same struct serve create, full update and partial update.
type UserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin trainer member"`
}

func (r UserRequest) toInput() service.UserInput {
	return service.UserInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// --- Handler Methods ---

// ListUsers returns the users within the caller's scope: admins see all,
// trainers see members, members get an empty list.
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	users, err := h.userService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// GetUser returns a single user, or 404 when the record is outside the
// caller's scope.
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// CreateUser provisions an account with an explicit role (defaults to member).
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserFields), errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// UpdateUser handles PUT and PATCH; absent fields are left untouched.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUserAlreadyExists), errors.Is(err, service.ErrInvalidRole):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteUser removes a user within the caller's scope.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete user.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
