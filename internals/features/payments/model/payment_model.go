package model

import (
	"time"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExpired = "expired"
	PaymentStatusFailed  = "failed"
	PaymentStatusCancel  = "cancel"
)

// PaymentModel: invoice promosi listing per agency. OrderID dipakai
// sebagai OrderID Midtrans, jadi harus unik.
type PaymentModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgencyID    uint   `gorm:"not null;index" json:"agency_id"`
	OrderID     string `gorm:"size:64;not null;uniqueIndex" json:"order_id"`
	Description string `gorm:"size:255" json:"description"`

	AmountIDR int64  `gorm:"not null" json:"amount_idr"`
	Status    string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	SnapToken   *string `gorm:"size:128" json:"snap_token,omitempty"`
	RedirectURL *string `gorm:"size:255" json:"redirect_url,omitempty"`

	PaidAt *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
