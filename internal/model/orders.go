package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota + 1
	OrderStatusDone
	OrderStatusDelivering
	OrderStatusAcceptedPaymentPending
)

var orderStatusCodes = map[OrderStatus]string{
	OrderStatusPending:                "P",
	OrderStatusDone:                   "F",
	OrderStatusDelivering:             "D",
	OrderStatusAcceptedPaymentPending: "N",
}

// Code - код статуса в том виде, в котором его принимает Bitrix24
func (s OrderStatus) Code() string {
	return orderStatusCodes[s]
}

// Order - заказ в том виде, в котором его отдает sale.order.list
type Order struct {
	AccountNumber   string  `json:"accountNumber"`
	AdditionalInfo  *string `json:"additionalInfo"`
	AffiliateID     *string `json:"affiliateId"`
	Canceled        string  `json:"canceled"`
	Comments        *string `json:"comments"`
	CompanyID       string  `json:"companyId"`
	Currency        string  `json:"currency"`
	DateCanceled    *string `json:"dateCanceled"`
	DateInsert      string  `json:"dateInsert"`
	DateLock        *string `json:"dateLock"`
	DateMarked      *string `json:"dateMarked"`
	DateStatus      string  `json:"dateStatus"`
	DateUpdate      string  `json:"dateUpdate"`
	Deducted        string  `json:"deducted"`
	DiscountValue   string  `json:"discountValue"`
	EmpCanceledID   *string `json:"empCanceledId"`
	EmpMarkedID     *string `json:"empMarkedId"`
	EmpStatusID     string  `json:"empStatusId"`
	ExternalOrder   string  `json:"externalOrder"`
	ID              string  `json:"id"`
	ID1C            *string `json:"id1c"`
	LID             string  `json:"lid"`
	LockedBy        *string `json:"lockedBy"`
	Marked          string  `json:"marked"`
	OrderTopic      *string `json:"orderTopic"`
	Payed           string  `json:"payed"`
	PersonTypeID    string  `json:"personTypeId"`
	PersonTypeXMLID string  `json:"personTypeXmlId"`
	Price           string  `json:"price"`
	ReasonCanceled  *string `json:"reasonCanceled"`
	ReasonMarked    *string `json:"reasonMarked"`
	RecountFlag     string  `json:"recountFlag"`
	RecurringID     *string `json:"recurringId"`
	ResponsibleID   *string `json:"responsibleId"`
	StatusID        string  `json:"statusId"`
	StatusXMLID     string  `json:"statusXmlId"`
	TaxValue        string  `json:"taxValue"`
	Updated1C       string  `json:"updated1c"`
	UserDescription string  `json:"userDescription"`
	UserID          string  `json:"userId"`
	Version         string  `json:"version"`
	Version1C       *string `json:"version1c"`
	XMLID           string  `json:"xmlId"`
}

// OrderSummary - поля заказа, которые реально читает расчет очереди
type OrderSummary struct {
	ID            string
	AccountNumber string
	StatusID      string
	DateInsert    string
}

func (o Order) Summary() OrderSummary {
	return OrderSummary{
		ID:            o.ID,
		AccountNumber: o.AccountNumber,
		StatusID:      o.StatusID,
		DateInsert:    o.DateInsert,
	}
}

type BasketItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  string `json:"quantity"`
}

// Count - количество товара в позиции. Дробные значения допустимы, отрицательные - нет.
func (b BasketItem) Count() (decimal.Decimal, error) {
	quantity, err := decimal.NewFromString(strings.TrimSpace(b.Quantity))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: order %s item %s: %q", ErrInvalidQuantity, b.OrderID, b.ID, b.Quantity)
	}

	if quantity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: order %s item %s: negative %s", ErrInvalidQuantity, b.OrderID, b.ID, b.Quantity)
	}

	return quantity, nil
}
