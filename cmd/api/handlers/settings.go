package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/cmd/api/middleware"
	"blogboard/dto"
	"blogboard/services"
)

// GetSettingsHandler godoc
// @Summary      Get settings
// @Description  The signed-in author's preferences; zero-valued when never saved
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.UserSettings
// @Router       /settings [get]
func GetSettingsHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		resp, err := svc.Get(c.Request.Context(), ident.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SaveSettingsHandler godoc
// @Summary      Save settings
// @Description  Merge only the fields present in the request
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.SettingsRequest  true  "Preference fields"
// @Produce      json
// @Success      200  {object}  models.UserSettings
// @Router       /settings [put]
func SaveSettingsHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		var req dto.SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := svc.Save(c.Request.Context(), ident.ID, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SubscribeNewsletterHandler godoc
// @Summary      Subscribe to newsletter
// @Description  Opt an email in; re-subscribing is a no-op
// @Tags         settings
// @Accept       json
// @Param        request  body  dto.NewsletterRequest  true  "Email"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Router       /newsletter [post]
func SubscribeNewsletterHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Subscribe(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "subscribed"})
	}
}

// UnsubscribeNewsletterHandler godoc
// @Summary      Unsubscribe from newsletter
// @Tags         settings
// @Accept       json
// @Param        request  body  dto.NewsletterRequest  true  "Email"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Router       /newsletter [delete]
func UnsubscribeNewsletterHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Unsubscribe(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
	}
}

// GetProfileHandler godoc
// @Summary      Get profile
// @Description  The signed-in account's display name, avatar and email
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      404  {object}  object{error=string}
// @Router       /profile [get]
func GetProfileHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		u, err := svc.Profile(c.Request.Context(), ident.Email)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfileHandler godoc
// @Summary      Update profile
// @Description  Merge display name and avatar onto the account; email and password never change here
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.ProfileRequest  true  "Profile fields"
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      400  {object}  object{error=string}
// @Router       /profile [put]
func UpdateProfileHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		var req dto.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		u, err := svc.UpdateProfile(c.Request.Context(), ident.Email, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// DeleteAccountHandler godoc
// @Summary      Delete account
// @Description  Removes the account, settings and newsletter opt-in, and soft-deletes all posts
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Router       /account [delete]
func DeleteAccountHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		if err := svc.DeleteAccount(c.Request.Context(), ident.ID, ident.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	}
}
