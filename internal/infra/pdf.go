package infra

// pdf.go — Cashflow report generation using go-pdf/fpdf.
// Renders the already-computed summary plus the chronological ledger into a
// fixed-layout A4 document:
//   - Centered title and generated-at line
//   - Summary block (cash in, instant-transfer purchases, total purchases, balance)
//   - Movements table (date, type, description, value) with page breaks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
)

const reportCurrency = "R$"

// BuildCashflowReport assembles the PDF document in memory.
func BuildCashflowReport(summary dto.CashflowSummary, entries []dto.CashflowEntry) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 28

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "Cashflow Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Generated at: "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ── Summary ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Cash received: %s %s", reportCurrency, summary.SalesMoney.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Purchases paid by instant transfer: %s %s", reportCurrency, summary.PurchasesPix.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Total purchases: %s %s", reportCurrency, summary.TotalPurchases.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Drawer balance: %s %s", reportCurrency, summary.Cashflow.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// ── Movements table ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Movements", "", 1, "L", false, 0, "")

	col1 := contentW * 0.18 // date
	col2 := contentW * 0.14 // type
	col3 := contentW * 0.48 // description
	col4 := contentW * 0.20 // value

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Value", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, entry := range entries {
		if pdf.GetY() > pageH-30 {
			pdf.AddPage()
		}

		label := "Outflow"
		if entry.Type == dto.CashflowInflow {
			label = "Inflow"
		}
		desc := entry.Description
		if len(desc) > 48 {
			desc = desc[:48]
		}
		pdf.CellFormat(col1, 6, formatReportDate(entry.Date), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, fmt.Sprintf("%s %s", reportCurrency, entry.Value.StringFixed(2)), "", 1, "R", false, 0, "")
	}

	return pdf
}

// RenderCashflowReport writes the report into a byte buffer (used by the
// synchronous download endpoint).
func RenderCashflowReport(summary dto.CashflowSummary, entries []dto.CashflowEntry) ([]byte, error) {
	var buf bytes.Buffer
	pdf := BuildCashflowReport(summary, entries)
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveCashflowReport writes the report to storagePath/cashflow_<date>.pdf and
// returns the absolute path (used by the async report worker).
func SaveCashflowReport(summary dto.CashflowSummary, entries []dto.CashflowEntry, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	fileName := fmt.Sprintf("cashflow_%s.pdf", time.Now().Format("2006-01-02_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := BuildCashflowReport(summary, entries)
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write report: %w", err)
	}
	return filePath, nil
}

// formatReportDate renders YYYY-MM-DD as DD/MM/YYYY, passing through
// anything it cannot parse.
func formatReportDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
