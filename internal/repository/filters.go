package repository

import (
	"regexp"

	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
)

// yearMonthRe matches a YYYY-MM date filter; anything else is treated as a
// full day and matched exactly.
var yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsYearMonth reports whether a date filter value selects a whole month.
// Shared with the in-memory store so both backends filter identically.
func IsYearMonth(date string) bool { return yearMonthRe.MatchString(date) }

// applyRecordFilter narrows a purchases/sales query by the typed filter.
// A YYYY-MM date becomes a prefix match; YYYY-MM-DD is exact equality.
func applyRecordFilter(q *gorm.DB, f dto.RecordFilter) *gorm.DB {
	if f.Date != "" {
		if IsYearMonth(f.Date) {
			q = q.Where("date LIKE ?", f.Date+"%")
		} else {
			q = q.Where("date = ?", f.Date)
		}
	}
	if f.PaymentType != "" {
		q = q.Where("payment_type = ?", f.PaymentType)
	}
	return q
}
