package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user records.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetAllUsersHandler handles GET /user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUserHandler handles PUT /user/:email. It writes the profile and
// returns a fresh access token for the email. An empty body is allowed.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "invalid user", err.Error())
		return
	}

	result, token, err := h.UserService.UpsertUser(c.Request.Context(), email, profile)
	if err != nil {
		getLogger(c).Error("Upsert error", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to save user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}
