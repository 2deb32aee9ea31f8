package main

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

func catalog() []model.Product {
	p := func(name, slug, category, brand, price, rating string, reviews, stock int64, desc string) model.Product {
		return model.Product{
			Name:         name,
			Slug:         slug,
			Category:     category,
			Image:        "/images/" + slug + ".jpg",
			Price:        decimal.RequireFromString(price),
			Brand:        brand,
			Rating:       decimal.RequireFromString(rating),
			NumReviews:   reviews,
			CountInStock: stock,
			Description:  desc,
		}
	}

	return []model.Product{
		p("Free Shirt", "free-shirt", "Shirts", "Nike", "70", "4.5", 10, 20, "A popular shirt"),
		p("Fit Shirt", "fit-shirt", "Shirts", "Adidas", "80", "3.2", 10, 20, "A popular shirt"),
		p("Slim Shirt", "slim-shirt", "Shirts", "Raymond", "90", "4.5", 10, 20, "A popular shirt"),
		p("Golf Pants", "golf-pants", "Pants", "Oliver", "90", "2.9", 13, 20, "Smart looking pants"),
		p("Fit Pants", "fit-pants", "Pants", "Zara", "95", "3.5", 7, 20, "A popular pants"),
		p("Classic Pants", "classic-pants", "Pants", "Casely", "75", "2.4", 14, 20, "A popular pants"),
		p("Rain Jacket", "rain-jacket", "Jackets", "Columbia", "210", "4.1", 5, 0, "Sold out for now"),
	}
}
