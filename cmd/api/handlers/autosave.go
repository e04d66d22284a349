package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/cmd/api/middleware"
	"blogboard/dto"
	"blogboard/services"
)

// TouchAutosaveHandler godoc
// @Summary      Stream draft edits into autosave
// @Description  Records the latest editor snapshot; the debounced draft save fires once the idle window elapses
// @Tags         editor
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string           true  "ObjectID"
// @Param        request  body  dto.PostRequest  true  "Current editor fields"
// @Produce      json
// @Success      202  {object}  object{state=string}
// @Failure      400  {object}  object{error=string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id}/autosave [put]
func TouchAutosaveHandler(svc *services.PostService, sessions *services.EditorSessions) gin.HandlerFunc {
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

		state := sessions.Touch(ident, *p, fieldsFromRequest(req, ident))
		c.JSON(http.StatusAccepted, gin.H{"state": state})
	}
}

// AutosaveStateHandler godoc
// @Summary      Autosave state
// @Description  The current autosave state of an open authoring session
// @Tags         editor
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{state=string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id}/autosave [get]
func AutosaveStateHandler(sessions *services.EditorSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		state, ok := sessions.State(ident.ID, c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no open session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": state})
	}
}

// RetryAutosaveHandler godoc
// @Summary      Retry failed autosave
// @Description  Re-issues the last failed autosave write of an open session
// @Tags         editor
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{state=string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id}/autosave/retry [post]
func RetryAutosaveHandler(sessions *services.EditorSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := middleware.Identity(c)
		state, ok := sessions.Retry(ident.ID, c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no open session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": state})
	}
}
