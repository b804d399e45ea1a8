package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idealhome/idealhome-api/internal/service"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
	"github.com/idealhome/idealhome-api/pkg/response"
)

// StaffExpenseHandler exposes staff salary and expense endpoints.
type StaffExpenseHandler struct {
	entries *service.StaffExpenseService
}

// NewStaffExpenseHandler constructs StaffExpenseHandler.
func NewStaffExpenseHandler(entries *service.StaffExpenseService) *StaffExpenseHandler {
	return &StaffExpenseHandler{entries: entries}
}

// List godoc
// @Summary List staff salary and expense entries
// @Tags StaffExpenses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /staff-expenses [get]
func (h *StaffExpenseHandler) List(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Save godoc
// @Summary Add or update an entry
// @Tags StaffExpenses
// @Accept json
// @Produce json
// @Param payload body service.SaveStaffExpenseRequest true "Entry payload, with id to update"
// @Success 200 {object} response.Envelope
// @Router /staff-expenses [post]
func (h *StaffExpenseHandler) Save(c *gin.Context) {
	var req service.SaveStaffExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	creating := req.ID == ""
	entry, err := h.entries.AddOrUpdate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if creating {
		response.Created(c, entry)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}
