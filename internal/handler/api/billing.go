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

type BillingHandler struct {
	billingCommands commands.BillingCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewBillingHandler(billingCommands commands.BillingCommands, invoiceQueries queries.InvoiceQueries) *BillingHandler {
	return &BillingHandler{
		billingCommands: billingCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Issue invoice
// @Description Issue the invoice for a checked-out reservation
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueInvoiceRequest true "Invoice request"
// @Success 201 {object} queries.InvoiceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invoices [post]
func (h *BillingHandler) Issue(c *gin.Context) {
	var req reqdto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.billingCommands.IssueInvoice(c.Request.Context(), req.ReservationID, req.DiscountCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrReservationNotBilled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation has not checked out",
			})
		case errors.Is(err, commands.ErrDuplicateInvoice):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invoice already issued for this reservation",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invoice validation failed",
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

// @Summary Record payment
// @Description Record a payment against an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} queries.InvoiceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /invoices/{id}/payments [post]
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.billingCommands.RecordPayment(c.Request.Context(), req.ToInput(id))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		case errors.Is(err, commands.ErrInvoiceNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invoice does not accept payments",
			})
		case errors.Is(err, commands.ErrOverpayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment exceeds invoice balance",
			})
		case errors.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid payment",
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

// @Summary Void invoice
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invoices/{id}/void [post]
func (h *BillingHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return
	}

	if err := h.billingCommands.VoidInvoice(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		case errors.Is(err, commands.ErrInvoiceNotVoidable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only pending invoices can be voided",
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

// @Summary Get invoice
// @Description Staff see any invoice; guests see their own
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} queries.InvoiceView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *BillingHandler) Get(c *gin.Context) {
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
			"error": "Invalid invoice ID format",
		})
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		case errors.Is(err, queries.ErrInvoiceAccess):
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

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Success 200 {array} queries.InvoiceView
// @Router /invoices [get]
func (h *BillingHandler) List(c *gin.Context) {
	views, err := h.invoiceQueries.List(c.Request.Context(), c.Query("status"), parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
