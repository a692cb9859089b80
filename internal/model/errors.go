package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	ErrInternalServerMessage  = "internal server error"
	ErrOrderIDRequiredMessage = "Missing order_id parameter"
	ErrOrderNotFoundMessage   = "Order not found"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidQuantity   = errors.New("invalid basket item quantity")
)
