package worker

// report_worker.go
// Processes cashflow report jobs from QueueReport: recomputes the summary and
// ledger for the requested filter, renders the PDF to disk, and optionally
// chains an email job to deliver it.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/infra"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	Date        string `json:"date,omitempty"`
	PaymentType string `json:"payment_type,omitempty"`
	Email       string `json:"email,omitempty"`
}

type ReportWorker struct {
	cashflow    service.CashflowService
	dispatcher  *Dispatcher
	storagePath string
}

func NewReportWorker(cashflow service.CashflowService, dispatcher *Dispatcher, storagePath string) *ReportWorker {
	return &ReportWorker{cashflow: cashflow, dispatcher: dispatcher, storagePath: storagePath}
}

func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("report_worker: invalid payload: %w", err)
	}

	filter := dto.RecordFilter{Date: payload.Date, PaymentType: payload.PaymentType}
	entries, err := w.cashflow.GetCashflow(ctx, filter)
	if err != nil {
		return fmt.Errorf("report_worker: load ledger: %w", err)
	}
	summary, err := w.cashflow.Calculate(ctx, filter)
	if err != nil {
		return fmt.Errorf("report_worker: calculate summary: %w", err)
	}

	path, err := infra.SaveCashflowReport(*summary, entries, w.storagePath)
	if err != nil {
		return fmt.Errorf("report_worker: %w", err)
	}
	log.Info().Str("path", path).Msg("report_worker: cashflow report generated")

	if payload.Email != "" {
		emailPayload := EmailJobPayload{
			ToEmail: payload.Email,
			Subject: "Cashflow report",
			Body:    "The cashflow report you requested is attached.",
			PDFPath: path,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailPayload); err != nil {
			return fmt.Errorf("report_worker: enqueue email: %w", err)
		}
	}
	return nil
}
