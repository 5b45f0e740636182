package api

import (
	"errors"
	"net/http"

	"hotelier/internal/domain/catalog"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	serviceQueries  queries.ServiceQueries
	contractQueries queries.ContractQueries
}

func NewCatalogHandler(
	catalogCommands commands.CatalogCommands,
	serviceQueries queries.ServiceQueries,
	contractQueries queries.ContractQueries,
) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		serviceQueries:  serviceQueries,
		contractQueries: contractQueries,
	}
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} queries.ServiceView
// @Failure 409 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service name already in use",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Service validation failed",
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

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateService(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrServiceNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service name already in use",
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

// @Summary List services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active services"
// @Success 200 {array} queries.ServiceView
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	views, err := h.serviceQueries.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
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

// @Summary Create service contract
// @Description Guest books catalog services for a date
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateContractRequest true "Contract"
// @Success 201 {object} queries.ContractView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /contracts [post]
func (h *CatalogHandler) CreateContract(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateContract(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrContractNoGuest):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No guest profile linked to this account",
			})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrServiceInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Service is inactive",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Contract validation failed",
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

// @Summary Transition service contract
// @Tags contracts
// @Accept json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Param request body reqdto.TransitionRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{id}/status [patch]
func (h *CatalogHandler) TransitionContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contract ID format",
		})
		return
	}

	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	to, err := catalog.NewContractStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contract status",
		})
		return
	}

	if err := h.catalogCommands.TransitionContract(c.Request.Context(), id, to); err != nil {
		switch {
		case errors.Is(err, commands.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Contract not found",
			})
		case errors.Is(err, commands.ErrIllegalContractTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Illegal contract transition",
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

// @Summary Get contract
// @Description Staff see any contract; guests see their own
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} queries.ContractView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contracts/{id} [get]
func (h *CatalogHandler) GetContract(c *gin.Context) {
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
			"error": "Invalid contract ID format",
		})
		return
	}

	view, err := h.contractQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Contract not found",
			})
		case errors.Is(err, queries.ErrContractAccess):
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

// @Summary List contracts
// @Description Staff get the full list; guests get their own
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Success 200 {array} queries.ContractView
// @Router /contracts [get]
func (h *CatalogHandler) ListContracts(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := parseLimit(c)

	var (
		views []*queries.ContractView
		err   error
	)
	if actor.IsStaff() {
		views, err = h.contractQueries.List(c.Request.Context(), c.Query("status"), limit)
	} else {
		views, err = h.contractQueries.ListOwn(c.Request.Context(), actor, limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
