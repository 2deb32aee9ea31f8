package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細はカート明細のスナップショット
type OrderItem = CartItem

// 注文（確定時点のカートの写し）
type Order struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID          string          `gorm:"type:varchar(36);not null;index" json:"user"`
	OrderItems      []OrderItem     `gorm:"type:jsonb;serializer:json;not null" json:"orderItems"`
	ShippingAddress ShippingAddress `gorm:"type:jsonb;serializer:json;not null" json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	ItemsPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"itemsPrice"`
	ShippingPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"shippingPrice"`
	TaxPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"taxPrice"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	IsPaid          bool            `gorm:"not null" json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `gorm:"not null" json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`
}
