// Package cart はカート状態の遷移を扱う。
// Reduce は純粋関数で、永続化は呼び出し側が行う。
package cart

import (
	"errors"

	"storefront/internal/domain/model"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrStockExceeded   = errors.New("Sorry. Product is out of stock")
)

// Action はカートへの操作
type Action interface {
	isAction()
}

// productIDが同じ明細があれば数量を置き換える
type AddItem struct {
	Item model.CartItem
}

type RemoveItem struct {
	ProductID string
}

type SaveShippingAddress struct {
	Address model.ShippingAddress
}

type SavePaymentMethod struct {
	Method string
}

// 明細だけ空にする（住所と支払方法は残す）
type ClearItems struct{}

// ログアウト時の全消去
type Reset struct{}

func (AddItem) isAction()             {}
func (RemoveItem) isAction()          {}
func (SaveShippingAddress) isAction() {}
func (SavePaymentMethod) isAction()   {}
func (ClearItems) isAction()          {}
func (Reset) isAction()               {}

// Reduce はエラー時に元のstateをそのまま返す
func Reduce(state model.Cart, a Action) (model.Cart, error) {
	next := model.Cart{
		Items:           state.CloneItems(),
		ShippingAddress: state.ShippingAddress,
		PaymentMethod:   state.PaymentMethod,
	}

	switch act := a.(type) {
	case AddItem:
		it := act.Item
		if it.Quantity < 1 {
			return state, ErrInvalidQuantity
		}
		if it.Quantity > it.CountInStock {
			return state, ErrStockExceeded
		}
		for i := range next.Items {
			if next.Items[i].ProductID == it.ProductID {
				next.Items[i] = it
				return next, nil
			}
		}
		next.Items = append(next.Items, it)

	case RemoveItem:
		kept := next.Items[:0]
		for _, it := range next.Items {
			if it.ProductID != act.ProductID {
				kept = append(kept, it)
			}
		}
		next.Items = kept

	case SaveShippingAddress:
		next.ShippingAddress = act.Address

	case SavePaymentMethod:
		m, err := model.ParsePaymentMethod(act.Method)
		if err != nil {
			return state, err
		}
		next.PaymentMethod = m

	case ClearItems:
		next.Items = []model.CartItem{}

	case Reset:
		return model.Cart{Items: []model.CartItem{}}, nil

	default:
		return state, errors.New("unknown cart action")
	}

	return next, nil
}
