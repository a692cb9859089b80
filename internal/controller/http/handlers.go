package http

import (
	"context"
	"net/http"

	"github.com/ibeloyar/orderqueue/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock_service.go -package=mocks

type Service interface {
	Estimate(ctx context.Context, params model.AggregateParams) (*model.AggregationResponse, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

// GetOrders - GET /orders?order_id=&from_date=&until_date=
func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	response, apiErr := c.service.Estimate(r.Context(), model.AggregateParams{
		OrderID:   query.Get("order_id"),
		FromDate:  query.Get("from_date"),
		UntilDate: query.Get("until_date"),
	})
	if apiErr != nil {
		writeJSON(w, c.lg, model.ErrorResponse{Error: apiErr.Message}, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, response, http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
