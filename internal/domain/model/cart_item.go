package model

import "github.com/shopspring/decimal"

// カートの明細
// 追加時点の商品情報と在庫数をスナップショットで持つ。
type CartItem struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	CountInStock int64           `json:"countInStock"`
}

func (it CartItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}

// 商品から明細を作る
func NewCartItem(p Product, quantity int64) CartItem {
	return CartItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Image:        p.Image,
		Price:        p.Price,
		Quantity:     quantity,
		CountInStock: p.CountInStock,
	}
}
