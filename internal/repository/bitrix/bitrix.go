package bitrix

import (
	"context"
	"strings"

	"github.com/ibeloyar/orderqueue/internal/model"
)

const (
	orderListMethod      = "sale.order.list"
	basketItemListMethod = "sale.basketitem.list"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string, headers map[string]string, payload any) ([]byte, error)
}

// listRequest - тело запроса к *.list методам REST API Bitrix24
type listRequest struct {
	Filter map[string]string `json:"filter"`
	Select []string          `json:"select,omitempty"`
}

type Repository struct {
	baseURL string
	headers map[string]string
	client  Fetcher
}

func New(baseURL string, headers map[string]string, client Fetcher) *Repository {
	return &Repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		client:  client,
	}
}

func (r *Repository) methodURL(method string) string {
	return r.baseURL + "/" + method + "/"
}

// GetOrderByID - возвращает заказ с единственным полем dateInsert, nil если заказа нет
func (r *Repository) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	body, err := r.client.Fetch(ctx, r.methodURL(orderListMethod), r.headers, listRequest{
		Filter: map[string]string{"id": orderID},
		Select: []string{"dateInsert"},
	})
	if err != nil {
		return nil, err
	}

	orders, err := parseOrders(body)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, nil
	}

	return &orders[0], nil
}

// GetOrdersByStatusBeforeDate - заказы в статусе status с dateInsert <= date.
// dateInsert выбирается вместе с остальными полями, по нему фильтрует сервис.
func (r *Repository) GetOrdersByStatusBeforeDate(ctx context.Context, status model.OrderStatus, date string) ([]model.Order, error) {
	body, err := r.client.Fetch(ctx, r.methodURL(orderListMethod), r.headers, listRequest{
		Filter: map[string]string{
			"statusId":     status.Code(),
			"<=dateInsert": date,
		},
		Select: []string{"id", "accountNumber", "statusId", "dateInsert"},
	})
	if err != nil {
		return nil, err
	}

	return parseOrders(body)
}

func (r *Repository) GetBasketItems(ctx context.Context, orderID string) ([]model.BasketItem, error) {
	body, err := r.client.Fetch(ctx, r.methodURL(basketItemListMethod), r.headers, listRequest{
		Filter: map[string]string{"orderId": orderID},
	})
	if err != nil {
		return nil, err
	}

	return parseBasketItems(body)
}
