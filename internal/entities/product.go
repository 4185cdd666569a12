package entities

import "fmt"

type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// ProductFilter ограничивает выборку товаров по цене. Nil значит "без границы".
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
}

// ProductPage содержит страницу товаров вместе с метаданными пагинации.
// NextOffset и PrevOffset равны nil, когда следующей/предыдущей страницы нет.
type ProductPage struct {
	Products   []Product
	Limit      int
	Total      int
	NextOffset *int
	PrevOffset *int
}

type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found for ID %s", e.ProductID)
}

type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient quantity for product %s", e.ProductID)
}
