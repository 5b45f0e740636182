package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already in use",
			})
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.UpdateRoom(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already in use",
			})
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Override room status
// @Description Staff escape hatch that bypasses the transition table
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/status [patch]
func (h *RoomHandler) OverrideStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.OverrideStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRoomStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room status",
			})
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
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

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param floor query int false "Floor filter"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var floor *int
	if raw := c.Query("floor"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid floor",
			})
			return
		}
		floor = &n
	}

	views, err := h.roomQueries.List(c.Request.Context(), c.Query("status"), floor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List available rooms
// @Description Rooms free for the whole [check_in, check_out) period with capacity for the party
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param check_in query string true "Check-in date (RFC 3339)"
// @Param check_out query string true "Check-out date (RFC 3339)"
// @Param headcount query int false "Party size"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	checkIn, err := time.Parse(time.RFC3339, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in date",
		})
		return
	}

	checkOut, err := time.Parse(time.RFC3339, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out date",
		})
		return
	}

	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_out must be after check_in",
		})
		return
	}

	headcount := 1
	if raw := c.Query("headcount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid headcount",
			})
			return
		}
		headcount = n
	}

	views, err := h.roomQueries.ListAvailable(c.Request.Context(), checkIn, checkOut, headcount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RoomTypeView
// @Router /room-types [get]
func (h *RoomHandler) ListTypes(c *gin.Context) {
	views, err := h.roomQueries.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create room type
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomTypeRequest true "Room type"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types [post]
func (h *RoomHandler) CreateType(c *gin.Context) {
	var req reqdto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.CreateRoomType(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room type name already in use",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room type validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update room type
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.RoomTypeRequest true "Room type"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types/{id} [put]
func (h *RoomHandler) UpdateType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	var req reqdto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.UpdateRoomType(c.Request.Context(), id, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, commands.ErrRoomTypeNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room type name already in use",
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
