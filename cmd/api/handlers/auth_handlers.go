package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/dto"
	"blogboard/repositories"
	"blogboard/services"
)

// RegisterHandler godoc
// @Summary      Register
// @Description  Create an account and return a signed token
// @Tags         auth
// @Accept       json
// @Param        request  body  dto.RegisterRequest  true  "Account fields"
// @Produce      json
// @Success      201  {object}  dto.TokenResponse
// @Failure      409  {object}  object{error=string}
// @Router       /auth/register [post]
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler godoc
// @Summary      Login
// @Description  Exchange email and password for a signed token
// @Tags         auth
// @Accept       json
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  object{error=string}
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, repositories.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
