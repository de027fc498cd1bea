package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docgen-server/internal/models"
)

func (h *APIHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		badRequest(c, fmt.Sprintf("Password length must be between %d and %d characters", minPasswordLength, maxPasswordLength))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *APIHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		User:        newUserResponse(user),
	})
}

func (h *APIHandler) logout(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
}

func (h *APIHandler) getMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
