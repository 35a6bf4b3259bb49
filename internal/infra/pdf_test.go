package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() (dto.CashflowSummary, []dto.CashflowEntry) {
	dec := decimal.RequireFromString
	summary := dto.CashflowSummary{
		SalesMoney:     dec("200"),
		PurchasesPix:   dec("100"),
		TotalPurchases: dec("100"),
		Cashflow:       dec("200"),
	}
	entries := []dto.CashflowEntry{
		{ID: "sale-1", Date: "2025-03-12", Type: dto.CashflowInflow, Description: "Sale - Iron", Value: dec("200"), PaymentType: "cash"},
		{ID: "purchase-1", Date: "2025-03-10", Type: dto.CashflowOutflow, Description: "Purchase - instant-transfer", Value: dec("100"), PaymentType: "instant-transfer"},
	}
	return summary, entries
}

func TestRenderCashflowReport(t *testing.T) {
	summary, entries := sampleReport()

	data, err := RenderCashflowReport(summary, entries)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderCashflowReportEmptyLedger(t *testing.T) {
	summary, _ := sampleReport()

	data, err := RenderCashflowReport(summary, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestSaveCashflowReport(t *testing.T) {
	summary, entries := sampleReport()
	dir := t.TempDir()

	path, err := SaveCashflowReport(summary, entries, filepath.Join(dir, "reports"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}

func TestFormatReportDate(t *testing.T) {
	assert.Equal(t, "12/03/2025", formatReportDate("2025-03-12"))
	assert.Equal(t, "2025-03", formatReportDate("2025-03")) // passthrough
}
