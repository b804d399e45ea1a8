package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idealhome/idealhome-api/internal/service"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
	"github.com/idealhome/idealhome-api/pkg/export"
	"github.com/idealhome/idealhome-api/pkg/response"
)

// PaymentHandler exposes payment endpoints under a student.
type PaymentHandler struct {
	payments *service.PaymentService
	students *service.StudentService
	receipts *export.ReceiptExporter
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService, students *service.StudentService, receipts *export.ReceiptExporter) *PaymentHandler {
	return &PaymentHandler{payments: payments, students: students, receipts: receipts}
}

// History godoc
// @Summary Payment history for a student
// @Tags Payments
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/payments [get]
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.payments.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

// Add godoc
// @Summary Record a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.AddPaymentRequest true "Payment line items"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/payments [post]
func (h *PaymentHandler) Add(c *gin.Context) {
	var req service.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	payment, err := h.payments.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// Status godoc
// @Summary Paid/unpaid status for a month
// @Tags Payments
// @Produce json
// @Param id path string true "Student ID"
// @Param month query string false "Month key YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/payments/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = h.payments.CurrentMonthKey()
	}
	paid, err := h.payments.IsPaidForMonth(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"month": month, "paid": paid})
}

// Receipt godoc
// @Summary Payment receipt PDF
// @Tags Payments
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param paymentId path string true "Payment ID"
// @Success 200 {file} binary
// @Router /students/{id}/payments/{paymentId}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	payment, err := h.payments.Get(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if payment.StudentID != c.Param("id") {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "payment not found"))
		return
	}
	student, err := h.students.Get(c.Request.Context(), payment.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.receipts.Render(export.Receipt{
		StudentName: student.Name,
		Month:       payment.Month,
		Apartment:   payment.Apartment,
		Tuition:     payment.Tuition,
		FoodDays:    payment.FoodDays,
		FoodRate:    payment.FoodRate,
		Total:       payment.Total,
	})
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, payment.Month))
	c.Data(http.StatusOK, "application/pdf", data)
}
