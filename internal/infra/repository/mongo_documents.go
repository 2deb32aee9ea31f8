package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/domain/model"
)

// 金額はDecimal128で保存する
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

type productDocument struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Slug         string               `bson:"slug"`
	Category     string               `bson:"category"`
	Image        string               `bson:"image"`
	Price        primitive.Decimal128 `bson:"price"`
	Brand        string               `bson:"brand"`
	Rating       primitive.Decimal128 `bson:"rating"`
	NumReviews   int64                `bson:"num_reviews"`
	CountInStock int64                `bson:"count_in_stock"`
	Description  string               `bson:"description"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func newProductDocument(p model.Product) productDocument {
	return productDocument{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Category:     p.Category,
		Image:        p.Image,
		Price:        toDecimal128(p.Price),
		Brand:        p.Brand,
		Rating:       toDecimal128(p.Rating),
		NumReviews:   p.NumReviews,
		CountInStock: p.CountInStock,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d productDocument) toModel() model.Product {
	return model.Product{
		ID:           d.ID,
		Name:         d.Name,
		Slug:         d.Slug,
		Category:     d.Category,
		Image:        d.Image,
		Price:        fromDecimal128(d.Price),
		Brand:        d.Brand,
		Rating:       fromDecimal128(d.Rating),
		NumReviews:   d.NumReviews,
		CountInStock: d.CountInStock,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	IsAdmin      bool      `bson:"is_admin"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func newUserDocument(u model.User) userDocument {
	return userDocument{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toModel() *model.User {
	return &model.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type orderItemDocument struct {
	ProductID    string               `bson:"product_id"`
	Name         string               `bson:"name"`
	Slug         string               `bson:"slug"`
	Image        string               `bson:"image"`
	Price        primitive.Decimal128 `bson:"price"`
	Quantity     int64                `bson:"quantity"`
	CountInStock int64                `bson:"count_in_stock"`
}

type addressDocument struct {
	FullName   string `bson:"full_name"`
	Address    string `bson:"address"`
	City       string `bson:"city"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}

type orderDocument struct {
	ID              string               `bson:"_id"`
	UserID          string               `bson:"user_id"`
	OrderItems      []orderItemDocument  `bson:"order_items"`
	ShippingAddress addressDocument      `bson:"shipping_address"`
	PaymentMethod   string               `bson:"payment_method"`
	ItemsPrice      primitive.Decimal128 `bson:"items_price"`
	ShippingPrice   primitive.Decimal128 `bson:"shipping_price"`
	TaxPrice        primitive.Decimal128 `bson:"tax_price"`
	TotalPrice      primitive.Decimal128 `bson:"total_price"`
	IsPaid          bool                 `bson:"is_paid"`
	PaidAt          *time.Time           `bson:"paid_at,omitempty"`
	IsDelivered     bool                 `bson:"is_delivered"`
	DeliveredAt     *time.Time           `bson:"delivered_at,omitempty"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func newOrderDocument(o model.Order) orderDocument {
	items := make([]orderItemDocument, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, orderItemDocument{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Slug:         it.Slug,
			Image:        it.Image,
			Price:        toDecimal128(it.Price),
			Quantity:     it.Quantity,
			CountInStock: it.CountInStock,
		})
	}

	a := o.ShippingAddress
	return orderDocument{
		ID:         o.ID,
		UserID:     o.UserID,
		OrderItems: items,
		ShippingAddress: addressDocument{
			FullName:   a.FullName,
			Address:    a.Address,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		ItemsPrice:    toDecimal128(o.ItemsPrice),
		ShippingPrice: toDecimal128(o.ShippingPrice),
		TaxPrice:      toDecimal128(o.TaxPrice),
		TotalPrice:    toDecimal128(o.TotalPrice),
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		IsDelivered:   o.IsDelivered,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d orderDocument) toModel() model.Order {
	items := make([]model.OrderItem, 0, len(d.OrderItems))
	for _, it := range d.OrderItems {
		items = append(items, model.OrderItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Slug:         it.Slug,
			Image:        it.Image,
			Price:        fromDecimal128(it.Price),
			Quantity:     it.Quantity,
			CountInStock: it.CountInStock,
		})
	}

	a := d.ShippingAddress
	return model.Order{
		ID:         d.ID,
		UserID:     d.UserID,
		OrderItems: items,
		ShippingAddress: model.ShippingAddress{
			FullName:   a.FullName,
			Address:    a.Address,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		},
		PaymentMethod: model.PaymentMethod(d.PaymentMethod),
		ItemsPrice:    fromDecimal128(d.ItemsPrice),
		ShippingPrice: fromDecimal128(d.ShippingPrice),
		TaxPrice:      fromDecimal128(d.TaxPrice),
		TotalPrice:    fromDecimal128(d.TotalPrice),
		IsPaid:        d.IsPaid,
		PaidAt:        d.PaidAt,
		IsDelivered:   d.IsDelivered,
		DeliveredAt:   d.DeliveredAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
