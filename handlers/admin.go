package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates role checks and promotion.
type AdminHandler struct {
	UserService user.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService) *AdminHandler {
	return &AdminHandler{UserService: us}
}

// CheckAdminHandler handles GET /admin/:email.
func (ah *AdminHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := ah.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to check role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteAdminHandler handles PUT /user/admin/:email. Only a stored admin may promote.
func (ah *AdminHandler) PromoteAdminHandler(c *gin.Context) {
	target := c.Param("email")
	requester, ok := middleware.DecodedEmail(c)
	if !ok {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "")
		return
	}

	result, err := ah.UserService.PromoteToAdmin(c.Request.Context(), requester, target)
	if errors.Is(err, user.ErrForbidden) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "")
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to promote user", zap.String("requester", requester), zap.String("target", target), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to update role")
		return
	}
	c.JSON(http.StatusOK, result)
}
