// internal/models/payment.go
package models

import "time"

// PaymentDetails as persisted. CardNumber is always the masked display
// form; the submitted value never reaches storage.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder,omitempty"`
	Method     string `json:"method,omitempty"`
}

type Payment struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"orderId"`
	UserID         string         `json:"userId"`
	Amount         float64        `json:"amount"`
	Status         PaymentStatus  `json:"status"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	CreatedAt      time.Time      `json:"createdAt"`
}
