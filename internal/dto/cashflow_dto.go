package dto

import "github.com/shopspring/decimal"

// CashflowEntry is synthesized per request from purchase/sale records —
// never persisted. Purchases become outflows, sales inflows.
type CashflowEntry struct {
	ID          string          `json:"id"` // "purchase-<uuid>" | "sale-<uuid>"
	Date        string          `json:"date"`
	Type        string          `json:"type"` // inflow | outflow
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	PaymentType string          `json:"payment_type"`
}

const (
	CashflowInflow  = "inflow"
	CashflowOutflow = "outflow"
)

// CashflowSummary is the physical cash-drawer balance derivation:
// Cashflow = SalesMoney + PurchasesPix - TotalPurchases.
type CashflowSummary struct {
	SalesMoney     decimal.Decimal `json:"sales_money"`     // cash sales
	PurchasesPix   decimal.Decimal `json:"purchases_pix"`   // instant-transfer purchases
	TotalPurchases decimal.Decimal `json:"total_purchases"` // all purchases
	Cashflow       decimal.Decimal `json:"cashflow"`
}

type CashflowResponse struct {
	Entries []CashflowEntry `json:"entries"`
	Total   int             `json:"total"`
}

// ExportCashflowRequest asks the worker pool to build the PDF report
// asynchronously; Email, when set, gets the generated file mailed to it.
type ExportCashflowRequest struct {
	Date        string `json:"date"         validate:"omitempty,max=10"`
	PaymentType string `json:"payment_type" validate:"omitempty,oneof=cash instant-transfer credit debit"`
	Email       string `json:"email"        validate:"omitempty,email"`
}

type ExportCashflowResponse struct {
	Status   string `json:"status"`
	FileName string `json:"file_name"`
}
