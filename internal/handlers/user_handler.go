package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/middleware"
	"rentify_backend/internal/services"
	"rentify_backend/internal/services/dto"
)

// UserHandler serves the /users resource group.
type UserHandler struct {
	*BaseHandler
	userService  services.UserService
	jwtSecret    []byte
	cookieMaxAge int
}

func NewUserHandler(base *BaseHandler, userService services.UserService, jwtSecret []byte, cookieMaxAge int) *UserHandler {
	return &UserHandler{
		BaseHandler:  base,
		userService:  userService,
		jwtSecret:    jwtSecret,
		cookieMaxAge: cookieMaxAge,
	}
}

// RegisterRoutes mounts the user routes. The password flows do not use
// the auth gate: forgot/reset authenticate by email and old password.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/forgot-password", h.ForgotPassword)
		users.PUT("/reset-password", h.ResetPassword)
		users.POST("/logout", h.Logout)
		users.GET("/me", middleware.AuthMiddleware(h.jwtSecret), h.GetCurrentUser)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.userService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetTokenCookie(c, response.Token, h.cookieMaxAge)
	Respond(c, http.StatusCreated, "User registered successfully", response)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.userService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetTokenCookie(c, response.Token, h.cookieMaxAge)
	Respond(c, http.StatusOK, "User logged in successfully", response)
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ForgotPassword(h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// The old session is useless now; force a fresh login.
	auth.ClearTokenCookie(c)
	Respond(c, http.StatusOK, "Password reset email sent successfully", nil)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ResetPassword(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.ClearTokenCookie(c)
	Respond(c, http.StatusOK, "Password reset successfully.", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	auth.ClearTokenCookie(c)
	Respond(c, http.StatusOK, "User logged out successfully", nil)
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "User fetched successfully.", user)
}
