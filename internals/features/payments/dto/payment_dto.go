package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/payments/model"
)

/* ===================== REQUESTS ===================== */

type CreatePaymentRequest struct {
	AgencyID    uint    `json:"agency_id" validate:"required,gt=0"`
	AmountIDR   int64   `json:"amount_idr" validate:"required,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r CreatePaymentRequest) ToModel(orderID string) *model.PaymentModel {
	m := &model.PaymentModel{
		AgencyID:  r.AgencyID,
		OrderID:   orderID,
		AmountIDR: r.AmountIDR,
		Status:    model.PaymentStatusPending,
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	return m
}

// MidtransNotification: payload webhook Midtrans (field yang dipakai saja).
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

/* ===================== RESPONSES ===================== */

type PaymentResponse struct {
	ID          uint       `json:"id"`
	AgencyID    uint       `json:"agency_id"`
	OrderID     string     `json:"order_id"`
	Description string     `json:"description,omitempty"`
	AmountIDR   int64      `json:"amount_idr"`
	Status      string     `json:"status"`
	SnapToken   *string    `json:"snap_token,omitempty"`
	RedirectURL *string    `json:"redirect_url,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	if m == nil {
		return nil
	}
	return &PaymentResponse{
		ID:          m.ID,
		AgencyID:    m.AgencyID,
		OrderID:     m.OrderID,
		Description: m.Description,
		AmountIDR:   m.AmountIDR,
		Status:      m.Status,
		SnapToken:   m.SnapToken,
		RedirectURL: m.RedirectURL,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
