package service

import "github.com/ibeloyar/orderqueue/internal/model"

// filterByDateRange - оставляет заказы с from <= dateInsert <= until.
// Даты сравниваются как строки, пустая граница не ограничивает.
func filterByDateRange(orders []model.OrderSummary, from, until string) []model.OrderSummary {
	if from == "" && until == "" {
		return orders
	}

	filtered := make([]model.OrderSummary, 0, len(orders))
	for _, order := range orders {
		if from != "" && order.DateInsert < from {
			continue
		}
		if until != "" && order.DateInsert > until {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered
}
