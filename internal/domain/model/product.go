package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Category     string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Image        string          `gorm:"type:varchar(512)" json:"image"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Brand        string          `gorm:"type:varchar(255)" json:"brand"`
	Rating       decimal.Decimal `gorm:"type:numeric(3,2);not null" json:"rating"`
	NumReviews   int64           `gorm:"not null" json:"numReviews"`
	CountInStock int64           `gorm:"not null" json:"countInStock"`
	Description  string          `gorm:"type:text" json:"description"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
