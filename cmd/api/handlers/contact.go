package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogboard/cmd/api/clients/formrelay"
	"blogboard/internal/logger"
	"blogboard/dto"
)

// MessageRelay is the slice of the form relay client the handler needs.
type MessageRelay interface {
	Send(ctx context.Context, name, email, message string) error
}

// ContactHandler godoc
// @Summary      Send contact message
// @Description  Logs the submission and relays it through the external form service
// @Tags         contact
// @Accept       json
// @Param        request  body  dto.ContactRequest  true  "Message"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      502  {object}  object{error=string}
// @Router       /contact [post]
func ContactHandler(relay MessageRelay) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logger.InfoWithFields("contact form submitted", logger.Fields{
			"name":  req.Name,
			"email": req.Email,
		})

		if err := relay.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, formrelay.ErrRelayRejected) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{"error": "Something went wrong."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Thanks for contacting us!"})
	}
}
