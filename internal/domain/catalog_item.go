package domain

import (
	"fmt"
)

type CatalogItem struct {
	Name  string
	Price Money
}

func NewCatalogItem(name string, price Money) (CatalogItem, error) {
	if name == "" {
		return CatalogItem{}, fmt.Errorf("name is empty")
	}

	if price.Amount.IsNegative() {
		return CatalogItem{}, fmt.Errorf("price is negative")
	}

	return CatalogItem{
		Name:  name,
		Price: price,
	}, nil
}
