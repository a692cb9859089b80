package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AggregateParams - якорный заказ и необязательный диапазон дат dateInsert
type AggregateParams struct {
	OrderID   string
	FromDate  string
	UntilDate string
}

type OrderDetail struct {
	OrderID string
	Items   decimal.Decimal
	Time    string
}

// Aggregation - ожидающие заказы перед якорным, в порядке выдачи Bitrix24
type Aggregation struct {
	Details    []OrderDetail
	TotalItems decimal.Decimal
	TotalTime  string
}

type OrderDetailResponse struct {
	OrderID string  `json:"order_id"`
	Items   float64 `json:"items"`
	Time    string  `json:"time"`
}

type AggregationResponse struct {
	OrderDetails []OrderDetailResponse `json:"order_details"`
	TotalItems   float64               `json:"total_items"`
	TotalTime    string                `json:"total_time"`
}

// Summary - текстовая сводка для лога. Количества выводятся в десятичной записи без
// дробной части для целых значений: "3", а не "3.0".
func (a *Aggregation) Summary() string {
	lines := make([]string, 0, len(a.Details))
	for _, d := range a.Details {
		lines = append(lines, fmt.Sprintf("Order ID: %s, Items: %s, Time: %s", d.OrderID, d.Items, d.Time))
	}

	return fmt.Sprintf("Order Details:\n%s\n\nTotal Items: %s\nTotal Time: %s",
		strings.Join(lines, "\n"),
		a.TotalItems,
		a.TotalTime,
	)
}

func (a *Aggregation) Response() AggregationResponse {
	details := make([]OrderDetailResponse, 0, len(a.Details))
	for _, d := range a.Details {
		items, _ := d.Items.Float64()
		details = append(details, OrderDetailResponse{
			OrderID: d.OrderID,
			Items:   items,
			Time:    d.Time,
		})
	}

	total, _ := a.TotalItems.Float64()

	return AggregationResponse{
		OrderDetails: details,
		TotalItems:   total,
		TotalTime:    a.TotalTime,
	}
}
