package pipeline

import (
	"strings"
	"time"

	"fluxo/internal/model"
)

// FilterBySearch returns transactions whose description or cost-center name
// matches the query, case-insensitively.
func FilterBySearch(txs []model.Transaction, centers []model.CostCenter, query string) []model.Transaction {
	if query == "" {
		return txs
	}

	centerNames := make(map[string]string, len(centers))
	for _, c := range centers {
		centerNames[c.ID] = c.Name
	}

	var result []model.Transaction
	for _, tx := range txs {
		if containsIgnoreCase(tx.Description, query) ||
			containsIgnoreCase(centerNames[tx.CostCenterID], query) {
			result = append(result, tx)
		}
	}
	return result
}

// FilterByCostCenter returns transactions attributed to the given cost center.
func FilterByCostCenter(txs []model.Transaction, centerID string) []model.Transaction {
	if centerID == "" {
		return txs
	}
	var result []model.Transaction
	for _, tx := range txs {
		if tx.CostCenterID == centerID {
			result = append(result, tx)
		}
	}
	return result
}

// FilterByDateRange returns transactions dated within [from, to], inclusive
// by day. Zero bounds are open.
func FilterByDateRange(txs []model.Transaction, from, to time.Time) []model.Transaction {
	if from.IsZero() && to.IsZero() {
		return txs
	}
	var result []model.Transaction
	for _, tx := range txs {
		if !from.IsZero() && tx.Date.Before(model.Day(from)) {
			continue
		}
		if !to.IsZero() && tx.Date.After(model.Day(to)) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
