package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogboard/services"
)

// ListPublicPostsHandler godoc
// @Summary      List public posts
// @Description  Published posts only, newest first, with title search and pagination
// @Tags         public
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        search  query  string  false  "Title substring, case-insensitive"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Router       /public/posts [get]
func ListPublicPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		search := c.Query("search")

		resp, err := svc.ListPublic(c.Request.Context(), search, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GroupedPublicPostsHandler godoc
// @Summary      Public posts grouped by category
// @Description  Categories appear in the order they are first seen; uncategorized posts get their own bucket
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.CategoryGroupDTO
// @Router       /public/posts/grouped [get]
func GroupedPublicPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.ListPublicGrouped(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetPublicPostHandler godoc
// @Summary      Get public post
// @Description  Full content of one published post
// @Tags         public
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  object{error=string}
// @Router       /public/posts/{id} [get]
func GetPublicPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.GetPublic(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
