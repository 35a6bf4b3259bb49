package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/apierror"
	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/infra"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"
	"github.com/guilhermehba/estoque-ferro-velho/internal/worker"

	"github.com/gin-gonic/gin"
)

type CashflowHandler struct {
	svc        service.CashflowService
	dispatcher *worker.Dispatcher
}

func NewCashflowHandler(svc service.CashflowService, dispatcher *worker.Dispatcher) *CashflowHandler {
	return &CashflowHandler{svc: svc, dispatcher: dispatcher}
}

// List returns the unified movements ledger (purchases as outflows, sales as
// inflows) sorted by date descending.
func (h *CashflowHandler) List(c *gin.Context) {
	var f dto.RecordFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	entries, err := h.svc.GetCashflow(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build cashflow"))
		return
	}
	c.JSON(http.StatusOK, dto.CashflowResponse{Entries: entries, Total: len(entries)})
}

// Summary returns the cash-drawer balance for the requested date filter.
func (h *CashflowHandler) Summary(c *gin.Context) {
	var f dto.RecordFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	summary, err := h.svc.Calculate(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to calculate cashflow"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export renders the cashflow report synchronously and streams it back as a
// PDF download.
func (h *CashflowHandler) Export(c *gin.Context) {
	var f dto.RecordFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}

	entries, err := h.svc.GetCashflow(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build cashflow"))
		return
	}
	summary, err := h.svc.Calculate(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to calculate cashflow"))
		return
	}

	data, err := infra.RenderCashflowReport(*summary, entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render report"))
		return
	}

	fileName := fmt.Sprintf("cashflow_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportAsync queues the report generation on the worker pool. When the
// request carries an email, the finished PDF is mailed to it.
func (h *CashflowHandler) ExportAsync(c *gin.Context) {
	var req dto.ExportCashflowRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if h.dispatcher == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("report queue unavailable"))
		return
	}

	payload := worker.ReportJobPayload{
		Date:        req.Date,
		PaymentType: req.PaymentType,
		Email:       req.Email,
	}
	if err := h.dispatcher.EnqueueReport(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("failed to enqueue report"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
