package controllers

import (
	"errors"

	"shopkart/models"
	"shopkart/repositories"
	"shopkart/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

// Register godoc
// @Summary Register new user
// @Description Create a new customer account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 200 {object} models.RegisterResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Missing fields"})
		return
	}

	user, err := ctrl.accounts.Register(req)
	switch {
	case errors.Is(err, services.ErrMissingField):
		c.JSON(400, models.MessageResponse{Message: "Missing fields"})
		return
	case errors.Is(err, repositories.ErrEmailTaken):
		c.JSON(400, models.MessageResponse{Message: "Email already registered"})
		return
	case err != nil:
		c.JSON(500, models.ErrorResponse{Error: "Unable to register"})
		return
	}

	c.JSON(200, models.RegisterResponse{Message: "Registration successful", User: user})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Account
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(401, models.MessageResponse{Message: "Invalid credentials"})
		return
	}

	user, err := ctrl.accounts.Login(req)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(401, models.MessageResponse{Message: "Invalid credentials"})
		return
	case err != nil:
		c.JSON(500, models.ErrorResponse{Error: "Unable to login"})
		return
	}

	c.JSON(200, models.LoginResponse{Message: "Login successful", User: user})
}
