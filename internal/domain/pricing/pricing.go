// Package pricing はカートから金額を計算する。
// 見積もり画面と注文確定の両方から同じ関数を呼ぶ。
package pricing

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

var (
	// この金額を超えたら送料無料
	FreeShippingThreshold = decimal.NewFromInt(200)
	// 一律送料
	ShippingFee = decimal.NewFromInt(15)
	// 一律税率
	TaxRate = decimal.RequireFromString("0.15")
)

type Prices struct {
	ItemsPrice    decimal.Decimal `json:"itemsPrice"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	TaxPrice      decimal.Decimal `json:"taxPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// Equal は4項目すべてが一致するか
func (p Prices) Equal(o Prices) bool {
	return p.ItemsPrice.Equal(o.ItemsPrice) &&
		p.ShippingPrice.Equal(o.ShippingPrice) &&
		p.TaxPrice.Equal(o.TaxPrice) &&
		p.TotalPrice.Equal(o.TotalPrice)
}

// Calculate は副作用なし
func Calculate(items []model.CartItem) Prices {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	itemsPrice := Round2(sum)

	shipping := ShippingFee
	if itemsPrice.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := Round2(itemsPrice.Mul(TaxRate))

	return Prices{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shipping,
		TaxPrice:      tax,
		TotalPrice:    Round2(itemsPrice.Add(shipping).Add(tax)),
	}
}

// 小数2桁で四捨五入（0.005 は切り上げ）
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
