package api

import (
	"errors"
	"net/http"

	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageCommands commands.MessageCommands
	messageQueries  queries.MessageQueries
}

func NewMessageHandler(messageCommands commands.MessageCommands, messageQueries queries.MessageQueries) *MessageHandler {
	return &MessageHandler{
		messageCommands: messageCommands,
		messageQueries:  messageQueries,
	}
}

// @Summary Create message
// @Description Guest sends a message to the front desk
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMessageRequest true "Message"
// @Success 201 {object} queries.MessageView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.messageCommands.Create(c.Request.Context(), actor, req.Subject, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMessageNoGuest):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No guest profile linked to this account",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Message validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Reply to message
// @Description Staff reply; the reply is overwritable until the message is closed
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body reqdto.ReplyRequest true "Reply"
// @Success 200 {object} queries.MessageView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message ID format",
		})
		return
	}

	var req reqdto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.messageCommands.Reply(c.Request.Context(), actor.UserID, id, req.Reply)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
		case errors.Is(err, commands.ErrMessageClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Message is closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Close message
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /messages/{id}/close [post]
func (h *MessageHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message ID format",
		})
		return
	}

	if err := h.messageCommands.Close(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} queries.MessageView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message ID format",
		})
		return
	}

	view, err := h.messageQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
		case errors.Is(err, queries.ErrMessageAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List messages
// @Description Staff get the full inbox; guests get their own threads
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Success 200 {array} queries.MessageView
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := parseLimit(c)

	var (
		views []*queries.MessageView
		err   error
	)
	if actor.IsStaff() {
		views, err = h.messageQueries.List(c.Request.Context(), c.Query("status"), limit)
	} else {
		views, err = h.messageQueries.ListOwn(c.Request.Context(), actor, limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
