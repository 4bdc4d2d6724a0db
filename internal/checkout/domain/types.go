package domain

import "github.com/dwikikusuma/shopfront/pkg/money"

type QuoteLine struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unitPrice"`
	LineTotal money.Money `json:"lineTotal"`
}

type Quote struct {
	Lines []QuoteLine `json:"lines"`
	Total money.Money `json:"total"`
}
