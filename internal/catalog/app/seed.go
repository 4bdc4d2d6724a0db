package app

import "github.com/shopspring/decimal"

const unsplash = "https://images.unsplash.com/"

// DemoProducts is the catalog the shop starts with when SEED_CATALOG is on.
func DemoProducts() []NewProduct {
	return []NewProduct{
		{
			ID:          "1",
			Name:        "Sony WH-1000XM4 Wireless Headphones",
			Price:       decimal.RequireFromString("348.00"),
			Stock:       50,
			Category:    "Electronics",
			Rating:      4.8,
			Description: "Industry-leading noise canceling with Dual Noise Sensor technology. Up to 30-hour battery life with quick charge.",
			Image:       unsplash + "photo-1505740420928-5e560c06d30e?w=1000&q=80",
		},
		{
			ID:          "2",
			Name:        "Apple Watch Series 9",
			Price:       decimal.RequireFromString("399.99"),
			Stock:       30,
			Category:    "Electronics",
			Rating:      4.9,
			Description: "Advanced health monitoring, ECG app, and blood oxygen measurement. Now with faster charging.",
			Image:       unsplash + "photo-1523275335684-37898b6baf30?w=1000&q=80",
		},
		{
			ID:          "3",
			Name:        "Nike Air Max Running Shoes",
			Price:       decimal.RequireFromString("129.99"),
			Stock:       25,
			Category:    "Sports",
			Rating:      4.7,
			Description: "Comfortable running shoes with Air Max cushioning for daily exercise and casual wear.",
			Image:       unsplash + "photo-1542291026-7eec264c27ff?w=1000&q=80",
		},
		{
			ID:          "4",
			Name:        "MacBook Pro 16-inch",
			Price:       decimal.RequireFromString("2399.00"),
			Stock:       15,
			Category:    "Electronics",
			Rating:      4.9,
			Description: "Powerful laptop with M3 Pro chip, 16-inch Liquid Retina XDR display, and all-day battery life.",
			Image:       unsplash + "photo-1496181133206-80ce9b88a853?w=1000&q=80",
		},
		{
			ID:          "5",
			Name:        "Yoga Mat Premium",
			Price:       decimal.RequireFromString("89.99"),
			Stock:       40,
			Category:    "Sports",
			Rating:      4.6,
			Description: "Non-slip yoga mat with superior grip and cushioning. Perfect for all types of yoga practice.",
			Image:       unsplash + "photo-1601925260368-ae2f83cf8b7f?w=1000&q=80",
		},
		{
			ID:          "6",
			Name:        "Coffee Maker Deluxe",
			Price:       decimal.RequireFromString("299.99"),
			Stock:       20,
			Category:    "Home",
			Rating:      4.5,
			Description: "Professional-grade coffee maker with programmable settings and thermal carafe.",
			Image:       unsplash + "photo-1495474472287-4d71bcdd2085?w=1000&q=80",
		},
	}
}
