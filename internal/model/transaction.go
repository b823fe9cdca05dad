// Package model defines domain types for the fluxo ledger and cash-flow series.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType distinguishes revenue from expense entries.
type TxType string

const (
	TxRevenue TxType = "revenue"
	TxExpense TxType = "expense"
)

// TxStatus is descriptive only; it never gates inclusion in balance math.
type TxStatus string

const (
	StatusPaid    TxStatus = "paid"
	StatusPending TxStatus = "pending"
)

// Transaction is a single ledger entry. Amount is always a non-negative
// magnitude; the sign is carried by Type.
type Transaction struct {
	ID           string
	Description  string
	Date         time.Time // calendar day, midnight local, no time component
	Amount       decimal.Decimal
	Type         TxType
	CostCenterID string
	ProjectID    string // revenue only, empty otherwise
	Status       TxStatus
}

// Signed returns the amount with its sign applied: positive for revenue,
// negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TxExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CostCenter is a budget bucket with a fixed ceiling for the period.
type CostCenter struct {
	ID     string
	Name   string
	Budget decimal.Decimal
}

// Project is a mission project that revenue can be attributed to.
type Project struct {
	ID   string
	Name string
}

// Day normalizes t to midnight UTC of its calendar date. Every day value in
// the system goes through here, so dates parsed from flags, the store, and
// the local clock all compare as the same instant.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats a time as the canonical per-day map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
