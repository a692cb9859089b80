package bitrix

import (
	"encoding/json"
	"fmt"

	"github.com/ibeloyar/orderqueue/internal/model"
)

type ordersEnvelope struct {
	Result *struct {
		Orders []model.Order `json:"orders"`
	} `json:"result"`
}

type basketItemsEnvelope struct {
	Result *struct {
		BasketItems []model.BasketItem `json:"basketItems"`
	} `json:"result"`
}

// parseOrders - достает result.orders; отсутствие ключей дает пустой список, а не ошибку
func parseOrders(body []byte) ([]model.Order, error) {
	var envelope ordersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: orders: %w", model.ErrMalformedResponse, err)
	}

	if envelope.Result == nil || envelope.Result.Orders == nil {
		return []model.Order{}, nil
	}

	return envelope.Result.Orders, nil
}

// parseBasketItems - достает result.basketItems, по тем же правилам что и parseOrders
func parseBasketItems(body []byte) ([]model.BasketItem, error) {
	var envelope basketItemsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: basket items: %w", model.ErrMalformedResponse, err)
	}

	if envelope.Result == nil || envelope.Result.BasketItems == nil {
		return []model.BasketItem{}, nil
	}

	return envelope.Result.BasketItems, nil
}
