package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ibeloyar/orderqueue/internal/estimate"
	"github.com/ibeloyar/orderqueue/internal/model"
	"github.com/ibeloyar/orderqueue/pgk/restclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type BitrixRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByStatusBeforeDate(ctx context.Context, status model.OrderStatus, date string) ([]model.Order, error)
	GetBasketItems(ctx context.Context, orderID string) ([]model.BasketItem, error)
}

type Service struct {
	repo BitrixRepo
	lg   *zap.SugaredLogger
}

func New(r BitrixRepo, lg *zap.SugaredLogger) *Service {
	return &Service{
		repo: r,
		lg:   lg,
	}
}

// Aggregate - считает товары в ожидающих заказах, оформленных не позже якорного заказа.
// Заказы и корзины запрашиваются последовательно, в порядке выдачи Bitrix24.
func (s *Service) Aggregate(ctx context.Context, params model.AggregateParams) (*model.Aggregation, error) {
	s.lg.Infof("Fetching order by ID: %s", params.OrderID)
	anchor, err := s.repo.GetOrderByID(ctx, params.OrderID)
	if err != nil && !s.isUnavailable(ctx, err) {
		return nil, fmt.Errorf("get order %s: %w", params.OrderID, err)
	}
	if anchor == nil {
		s.lg.Error("Order not found.")
		return nil, model.ErrOrderNotFound
	}

	cutoff := anchor.DateInsert
	s.lg.Infof("Order date: %s", cutoff)

	s.lg.Info("Fetching pending orders before the given order date")
	orders, err := s.repo.GetOrdersByStatusBeforeDate(ctx, model.OrderStatusPending, cutoff)
	if err != nil && !s.isUnavailable(ctx, err) {
		return nil, fmt.Errorf("get pending orders: %w", err)
	}

	pending := make([]model.OrderSummary, 0, len(orders))
	for _, order := range orders {
		pending = append(pending, order.Summary())
	}
	pending = filterByDateRange(pending, params.FromDate, params.UntilDate)

	result := &model.Aggregation{
		Details:    make([]model.OrderDetail, 0, len(pending)),
		TotalItems: decimal.Zero,
	}

	for _, order := range pending {
		s.lg.Infof("Fetching basket items for order ID: %s", order.ID)
		items, err := s.repo.GetBasketItems(ctx, order.ID)
		if err != nil && !s.isUnavailable(ctx, err) {
			return nil, fmt.Errorf("get basket items for order %s: %w", order.ID, err)
		}

		count, err := countItems(items)
		if err != nil {
			return nil, err
		}

		result.Details = append(result.Details, model.OrderDetail{
			OrderID: order.ID,
			Items:   count,
			Time:    estimate.Format(count),
		})
		result.TotalItems = result.TotalItems.Add(count)
	}

	result.TotalTime = estimate.Format(result.TotalItems)

	return result, nil
}

// Estimate - Aggregate для HTTP: проверяет параметры и переводит ошибки в APIError
func (s *Service) Estimate(ctx context.Context, params model.AggregateParams) (*model.AggregationResponse, *model.APIError) {
	if apiErr := validateAggregateParams(params); apiErr != nil {
		return nil, apiErr
	}

	result, err := s.Aggregate(ctx, params)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		}

		s.lg.Errorf("aggregate pending orders for %s: %v", params.OrderID, err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	response := result.Response()
	return &response, nil
}

// isUnavailable - сбой транспорта трактуется как пустой результат, если запрос не отменен
func (s *Service) isUnavailable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || !errors.Is(err, restclient.ErrRequestFailed) {
		return false
	}

	s.lg.Warnf("upstream unavailable, treating as no data: %v", err)
	return true
}

func countItems(items []model.BasketItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		count, err := item.Count()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(count)
	}

	return total, nil
}
