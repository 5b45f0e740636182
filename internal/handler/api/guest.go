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

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} queries.GuestView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.guestCommands.CreateGuest(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDocumentTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Identity document already registered",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest validation failed",
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

// @Summary Update guest contact details
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Fields to update"
// @Success 200 {object} queries.GuestView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	var req reqdto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.guestCommands.UpdateGuest(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
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

// @Summary Get guest
// @Description Staff see any guest; guests see their own record
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} queries.GuestView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
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
			"error": "Invalid guest ID format",
		})
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, queries.ErrGuestAccess):
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

// @Summary Search guests
// @Description Matches name, email and document number, case-insensitively
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Param limit query int false "Page size"
// @Success 200 {array} queries.GuestView
// @Router /guests [get]
func (h *GuestHandler) Search(c *gin.Context) {
	views, err := h.guestQueries.Search(c.Request.Context(), c.Query("q"), parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
