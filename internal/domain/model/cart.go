package model

// セッション単位のカート
// itemsはproductIDで一意。
type Cart struct {
	Items           []CartItem      `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// 明細のコピーを返す
func (c Cart) CloneItems() []CartItem {
	out := make([]CartItem, len(c.Items))
	copy(out, c.Items)
	return out
}
