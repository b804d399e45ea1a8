package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idealhome/idealhome-api/internal/models"
	"github.com/idealhome/idealhome-api/internal/service"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
	"github.com/idealhome/idealhome-api/pkg/export"
	"github.com/idealhome/idealhome-api/pkg/response"
)

// ExportHandler serves the ledger data export.
type ExportHandler struct {
	students *service.StudentService
	payments *service.PaymentService
	ledger   *export.LedgerExporter
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(students *service.StudentService, payments *service.PaymentService, ledger *export.LedgerExporter) *ExportHandler {
	return &ExportHandler{students: students, payments: payments, ledger: ledger}
}

// Students godoc
// @Summary Export the student ledger as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} binary
// @Router /students/export [get]
func (h *ExportHandler) Students(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), models.StudentFilter{})
	if err != nil {
		response.Error(c, err)
		return
	}
	payments, err := h.payments.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.ledger.Render(students, payments)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
