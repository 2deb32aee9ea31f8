package model

import "github.com/shopspring/decimal"

// UseNumericJSON は金額をJSONで数値として返すようにする。
// decimalのパッケージ変数を書き換えるので、起動時に一度だけ呼ぶ
func UseNumericJSON() {
	decimal.MarshalJSONWithoutQuotes = true
}
