package model

import "strings"

// 配送先住所（shipping ステップで確定）
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required,max=255"`
	Address    string `json:"address" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=255"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// 5項目すべて埋まっていれば完了
func (a ShippingAddress) IsComplete() bool {
	for _, v := range []string{a.FullName, a.Address, a.City, a.PostalCode, a.Country} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
