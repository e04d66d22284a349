package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogboard/auth"
	"blogboard/cmd/api/middleware"
	"blogboard/dto"
	"blogboard/editor"
	"blogboard/models"
	"blogboard/services"
)

// ListMyPostsHandler godoc
// @Summary      List own posts
// @Description  List the signed-in author's posts with title search and pagination
// @Tags         posts
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        search  query  string  false  "Title substring, case-insensitive"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Router       /posts [get]
func ListMyPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		search := c.Query("search")

		resp, err := svc.ListOwn(c.Request.Context(), ident.ID, search, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// OverviewHandler godoc
// @Summary      Dashboard overview
// @Description  Counts and distinct categories/tags of the author's live posts
// @Tags         posts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.OverviewDTO
// @Router       /posts/overview [get]
func OverviewHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		resp, err := svc.Overview(c.Request.Context(), ident.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetMyPostHandler godoc
// @Summary      Get own post for editing
// @Description  Full post content, owner only
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [get]
func GetMyPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		p, err := svc.GetOwn(c.Request.Context(), ident.ID, c.Param("id"))
		if err != nil {
			respondPostError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(*p))
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Create a draft or published post; all required fields are validated for both
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.PostRequest  true  "Post fields"
// @Produce      json
// @Success      201  {object}  object{id=string}
// @Failure      400  {object}  object{error=string}
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		var req dto.PostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		form := editor.NewForm(svc, ident, nil)
		form.SetFields(fieldsFromRequest(req, ident))
		id, err := form.Submit(c.Request.Context(), models.PostStatus(req.Status))
		if err != nil {
			respondFormError(c, form, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Description  Merge the editable fields into an owned post; created_at and ownership never change
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string           true  "ObjectID"
// @Param        request  body  dto.PostRequest  true  "Post fields"
// @Produce      json
// @Success      200  {object}  object{id=string}
// @Failure      400  {object}  object{error=string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService, sessions *services.EditorSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		var req dto.PostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.GetOwn(c.Request.Context(), ident.ID, c.Param("id"))
		if err != nil {
			respondPostError(c, err)
			return
		}

		form := editor.NewForm(svc, ident, nil)
		form.LoadForEdit(*p)
		form.SetFields(fieldsFromRequest(req, ident))
		id, err := form.Submit(c.Request.Context(), models.PostStatus(req.Status))
		if err != nil {
			respondFormError(c, form, err)
			return
		}
		// a pending autosave must not write over the explicit submit
		sessions.Drop(ident.ID, id)
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// DeletePostHandler godoc
// @Summary      Delete post
// @Description  Soft-delete an owned post; the document stays for recovery
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService, sessions *services.EditorSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		id := c.Param("id")
		if err := svc.SoftDelete(c.Request.Context(), ident.ID, id); err != nil {
			respondPostError(c, err)
			return
		}
		sessions.Drop(ident.ID, id)
		c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
	}
}

// ExportMarkdownHandler godoc
// @Summary      Export post as markdown
// @Description  Title, short description and content joined as a markdown document
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MarkdownExportDTO
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id}/markdown [get]
func ExportMarkdownHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		resp, err := svc.ExportMarkdown(c.Request.Context(), ident.ID, c.Param("id"))
		if err != nil {
			respondPostError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// StreamMyPostsHandler godoc
// @Summary      Stream own posts
// @Description  Server-sent events; a full dashboard snapshot is pushed on every change
// @Tags         posts
// @Security     BearerAuth
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE stream of post snapshots"
// @Router       /posts/stream [get]
func StreamMyPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)

		snapshots, err := svc.WatchOwn(c.Request.Context(), ident.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			posts, ok := <-snapshots
			if !ok {
				return false
			}
			payload, err := json.Marshal(dto.NewPostDTOs(posts))
			if err != nil {
				return false
			}
			c.SSEvent("posts", string(payload))
			return true
		})
	}
}

// fieldsFromRequest maps the write payload onto form fields. Author name
// and email always come from the signed-in identity, never the client.
func fieldsFromRequest(req dto.PostRequest, ident auth.Identity) editor.Fields {
	return editor.Fields{
		Title:             req.Title,
		Category:          req.Category,
		Tags:              req.Tags,
		Author:            ident.Name,
		AuthorEmail:       ident.Email,
		Content:           req.Content,
		ShortDescription:  req.ShortDescription,
		EstimatedReadTime: req.EstimatedReadTime,
		Status:            models.PostStatus(req.Status),
	}
}

func respondFormError(c *gin.Context, form *editor.Form, err error) {
	if errors.Is(err, editor.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": form.FormError()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": form.FormError()})
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
