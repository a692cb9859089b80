package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/orderqueue/internal/model"
	"github.com/ibeloyar/orderqueue/pgk/restclient"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mockBitrix "github.com/ibeloyar/orderqueue/internal/service/mocks"
)

const anchorID = "5609"

var errUpstreamDown = fmt.Errorf("%w: 502 Bad Gateway", restclient.ErrRequestFailed)

func newTestService(t *testing.T) (*Service, *mockBitrix.MockBitrixRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mockBitrix.NewMockBitrixRepo(ctrl)

	return New(repo, zap.NewNop().Sugar()), repo
}

func anchorOrder() *model.Order {
	return &model.Order{ID: anchorID, DateInsert: "2024-03-01"}
}

func pendingOrders() []model.Order {
	return []model.Order{
		{ID: "101", StatusID: "P", DateInsert: "2024-02-15"},
		{ID: "102", StatusID: "P", DateInsert: "2024-02-20"},
	}
}

func basket(orderID string, quantities ...string) []model.BasketItem {
	items := make([]model.BasketItem, 0, len(quantities))
	for i, q := range quantities {
		items = append(items, model.BasketItem{ID: fmt.Sprint(i + 1), OrderID: orderID, Quantity: q})
	}
	return items
}

func TestService_Aggregate_PendingOrdersBeforeAnchor(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetOrderByID(ctx, anchorID).Return(anchorOrder(), nil),
		repo.EXPECT().GetOrdersByStatusBeforeDate(ctx, model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil),
		repo.EXPECT().GetBasketItems(ctx, "101").Return(basket("101", "1", "2"), nil),
		repo.EXPECT().GetBasketItems(ctx, "102").Return(basket("102", "7"), nil),
	)

	result, err := svc.Aggregate(ctx, model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	require.Len(t, result.Details, 2)
	assert.Equal(t, "101", result.Details[0].OrderID)
	assert.True(t, decimal.NewFromInt(3).Equal(result.Details[0].Items))
	assert.Equal(t, "0 days 0 hours 15 minutes", result.Details[0].Time)
	assert.Equal(t, "102", result.Details[1].OrderID)
	assert.True(t, decimal.NewFromInt(7).Equal(result.Details[1].Items))
	assert.Equal(t, "0 days 0 hours 35 minutes", result.Details[1].Time)

	assert.True(t, decimal.NewFromInt(10).Equal(result.TotalItems))
	assert.Equal(t, "0 days 0 hours 50 minutes", result.TotalTime)
}

func TestService_Aggregate_FractionalQuantities(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").
		Return([]model.Order{{ID: "101", DateInsert: "2024-02-15"}}, nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "0.5", "1.25"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1.75").Equal(result.TotalItems))
	assert.Equal(t, "0 days 0 hours 8 minutes", result.TotalTime)
}

func TestService_Aggregate_HugeQuantityKeepsTimePositive(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").
		Return([]model.Order{{ID: "101", DateInsert: "2024-02-15"}}, nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "2e18"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	require.Len(t, result.Details, 1)
	assert.Equal(t, "6944444444444444 days 10 hours 40 minutes", result.Details[0].Time)
	assert.Equal(t, "6944444444444444 days 10 hours 40 minutes", result.TotalTime)
}

func TestService_Aggregate_NoPendingOrders(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return([]model.Order{}, nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	assert.Empty(t, result.Details)
	assert.True(t, result.TotalItems.IsZero())
	assert.Equal(t, "0 days 0 hours 0 minutes", result.TotalTime)
}

func TestService_Aggregate_EmptyBasket(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return([]model.BasketItem{}, nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "4"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	require.Len(t, result.Details, 2)
	assert.True(t, result.Details[0].Items.IsZero())
	assert.Equal(t, "0 days 0 hours 0 minutes", result.Details[0].Time)
	assert.True(t, decimal.NewFromInt(4).Equal(result.TotalItems))
}

func TestService_Aggregate_OrderNotFound(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), "1").Return(nil, nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: "1"})

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, result)
}

func TestService_Aggregate_AnchorUnavailableIsNotFound(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(nil, errUpstreamDown)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, result)
}

func TestService_Aggregate_AnchorMalformedResponse(t *testing.T) {
	svc, repo := newTestService(t)

	malformed := fmt.Errorf("%w: orders: unexpected end of JSON input", model.ErrMalformedResponse)
	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(nil, malformed)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})

	assert.ErrorIs(t, err, model.ErrMalformedResponse)
	assert.False(t, errors.Is(err, model.ErrOrderNotFound))
	assert.Nil(t, result)
}

func TestService_Aggregate_PendingUnavailableIsEmpty(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(nil, errUpstreamDown)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	assert.Empty(t, result.Details)
	assert.True(t, result.TotalItems.IsZero())
}

func TestService_Aggregate_BasketUnavailableCountsZero(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(nil, errUpstreamDown)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "2"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})
	require.NoError(t, err)

	require.Len(t, result.Details, 2)
	assert.True(t, result.Details[0].Items.IsZero())
	assert.True(t, decimal.NewFromInt(2).Equal(result.TotalItems))
}

func TestService_Aggregate_InvalidQuantityDiscardsResult(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "1"), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "two"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{OrderID: anchorID})

	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	assert.Nil(t, result)
}

func TestService_Aggregate_CanceledContextPropagates(t *testing.T) {
	svc, repo := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.EXPECT().GetOrderByID(ctx, anchorID).Return(nil, fmt.Errorf("%w: %w", restclient.ErrRequestFailed, context.Canceled))

	result, err := svc.Aggregate(ctx, model.AggregateParams{OrderID: anchorID})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, model.ErrOrderNotFound))
	assert.Nil(t, result)
}

func TestService_Aggregate_DateRangeNarrowsWithoutRequery(t *testing.T) {
	svc, repo := newTestService(t)

	orders := []model.Order{
		{ID: "100", DateInsert: "2024-01-10"},
		{ID: "101", DateInsert: "2024-02-15"},
		{ID: "102", DateInsert: "2024-02-20"},
		{ID: "103", DateInsert: "2024-02-28"},
	}

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(orders, nil).Times(1)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "3"), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "7"), nil)

	result, err := svc.Aggregate(context.Background(), model.AggregateParams{
		OrderID:   anchorID,
		FromDate:  "2024-02-01",
		UntilDate: "2024-02-20",
	})
	require.NoError(t, err)

	require.Len(t, result.Details, 2)
	assert.Equal(t, "101", result.Details[0].OrderID)
	assert.Equal(t, "102", result.Details[1].OrderID)
	assert.True(t, decimal.NewFromInt(10).Equal(result.TotalItems))
}

func TestService_Aggregate_Idempotent(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil).Times(2)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil).Times(2)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "1", "2"), nil).Times(2)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "7"), nil).Times(2)

	params := model.AggregateParams{OrderID: anchorID}

	first, err := svc.Aggregate(context.Background(), params)
	require.NoError(t, err)
	second, err := svc.Aggregate(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first.Summary(), second.Summary())
	assert.Equal(t, first.Response(), second.Response())
}

func TestService_Estimate_Success(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").Return(pendingOrders(), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "101").Return(basket("101", "3"), nil)
	repo.EXPECT().GetBasketItems(gomock.Any(), "102").Return(basket("102", "7"), nil)

	response, apiErr := svc.Estimate(context.Background(), model.AggregateParams{OrderID: anchorID})

	assert.Nil(t, apiErr)
	require.NotNil(t, response)
	assert.Equal(t, model.AggregationResponse{
		OrderDetails: []model.OrderDetailResponse{
			{OrderID: "101", Items: 3, Time: "0 days 0 hours 15 minutes"},
			{OrderID: "102", Items: 7, Time: "0 days 0 hours 35 minutes"},
		},
		TotalItems: 10,
		TotalTime:  "0 days 0 hours 50 minutes",
	}, *response)
}

func TestService_Estimate_MissingOrderID(t *testing.T) {
	svc, _ := newTestService(t)

	response, apiErr := svc.Estimate(context.Background(), model.AggregateParams{})

	assert.Nil(t, response)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, "Missing order_id parameter", apiErr.Message)
}

func TestService_Estimate_OrderNotFound(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), "404").Return(nil, nil)

	response, apiErr := svc.Estimate(context.Background(), model.AggregateParams{OrderID: "404"})

	assert.Nil(t, response)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "Order not found", apiErr.Message)
}

func TestService_Estimate_InternalError(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetOrderByID(gomock.Any(), anchorID).Return(anchorOrder(), nil)
	repo.EXPECT().GetOrdersByStatusBeforeDate(gomock.Any(), model.OrderStatusPending, "2024-03-01").
		Return(nil, fmt.Errorf("%w: orders: invalid character", model.ErrMalformedResponse))

	response, apiErr := svc.Estimate(context.Background(), model.AggregateParams{OrderID: anchorID})

	assert.Nil(t, response)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrInternalServerMessage, apiErr.Message)
}
