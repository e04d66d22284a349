package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/internal/logger"
	"blogboard/dto"
	"blogboard/summarizer"
)

// SuggestHandler godoc
// @Summary      Suggest short description
// @Description  Generates a short description and read-time estimate for a draft
// @Tags         editor
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.SuggestRequest  true  "Draft title and content"
// @Produce      json
// @Success      200  {object}  dto.SuggestResponse
// @Failure      422  {object}  object{error=string}
// @Router       /editor/suggest [post]
func SuggestHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SuggestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		suggestion, llmLog, err := summarizer.Suggest(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			if suggestion != nil && suggestion.Error != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": *suggestion.Error})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if llmLog != nil {
			logger.DebugWithFields("editor suggestion generated", logger.Fields{
				"model":      llmLog.ModelName,
				"latency_ms": llmLog.LatencyMs,
				"tokens":     llmLog.TokenUsage.TotalTokens,
			})
		}
		c.JSON(http.StatusOK, dto.SuggestResponse{
			ShortDescription:  suggestion.ShortDescription,
			EstimatedReadTime: suggestion.EstimatedReadTime,
		})
	}
}
