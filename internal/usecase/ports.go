package usecase

import "time"

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文のメトリクス
type OrderMetrics interface {
	OrderPlaced(paymentMethod string)
	OrderRejected(reason string)
}

type nopOrderMetrics struct{}

func (nopOrderMetrics) OrderPlaced(string)   {}
func (nopOrderMetrics) OrderRejected(string) {}
