package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/cmd/api/middleware"
	"blogboard/dto"
	"blogboard/services"
)

// ImportFeedHandler godoc
// @Summary      Import feed as drafts
// @Description  Pulls items from an RSS/Atom feed and stores them as drafts owned by the caller
// @Tags         editor
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.ImportRequest  true  "Feed URL and options"
// @Produce      json
// @Success      200  {object}  services.ImportResult
// @Failure      400  {object}  object{error=string}
// @Router       /posts/import [post]
func ImportFeedHandler(svc *services.ImportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		var req dto.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		owner := services.ImportOwner{ID: ident.ID, Name: ident.Name, Email: ident.Email}
		result, err := svc.Import(c.Request.Context(), owner, services.ImportOptions{
			FeedURL:      req.FeedURL,
			MaxItems:     req.MaxItems,
			FetchContent: req.FetchContent,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
