package service

import (
	"net/http"
	"strings"

	"github.com/ibeloyar/orderqueue/internal/model"
)

func validateAggregateParams(params model.AggregateParams) *model.APIError {
	if strings.TrimSpace(params.OrderID) == "" {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderIDRequiredMessage,
		}
	}

	return nil
}
