package handler

import (
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
)

// ProductCreateRequest тело запроса на добавление товара
type ProductCreateRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Quantity *int     `json:"quantity" validate:"required"`
}

// Product представляет товар каталога
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PageMetadata метаданные пагинации
type PageMetadata struct {
	Limit      int  `json:"limit"`
	NextOffset *int `json:"next_offset"`
	PrevOffset *int `json:"prev_offset"`
	Total      int  `json:"total"`
}

// ProductList страница товаров
type ProductList struct {
	Data []Product    `json:"data"`
	Page PageMetadata `json:"page"`
}

// Address адрес доставки
type Address struct {
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

// OrderItemRequest позиция создаваемого заказа
type OrderItemRequest struct {
	ProductID      string  `json:"productId" validate:"required"`
	BoughtQuantity int     `json:"boughtQuantity" validate:"gte=0"`
	UnitPrice      float64 `json:"unitPrice" validate:"gte=0"`
}

// OrderCreateRequest тело запроса на создание заказа
type OrderCreateRequest struct {
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	UserAddress Address            `json:"userAddress" validate:"required"`
	CreatedOn   *time.Time         `json:"createdOn"`
}

// OrderItem позиция заказа в ответе (без цены)
type OrderItem struct {
	ProductID      string `json:"productId"`
	BoughtQuantity int    `json:"boughtQuantity"`
}

// Order представляет созданный заказ
type Order struct {
	ID          string      `json:"id"`
	CreatedOn   time.Time   `json:"createdOn"`
	Items       []OrderItem `json:"items"`
	UserAddress Address     `json:"userAddress"`
	TotalAmount float64     `json:"totalAmount"`
}

func ProductCreateToEntity(req ProductCreateRequest) entities.Product {
	return entities.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func ProductPageToJSON(page entities.ProductPage) ProductList {
	data := make([]Product, 0, len(page.Products))
	for _, p := range page.Products {
		data = append(data, ProductEntityToJSON(p))
	}

	return ProductList{
		Data: data,
		Page: PageMetadata{
			Limit:      page.Limit,
			NextOffset: page.NextOffset,
			PrevOffset: page.PrevOffset,
			Total:      page.Total,
		},
	}
}

func OrderCreateToEntity(req OrderCreateRequest) entities.Order {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			ProductID:      it.ProductID,
			BoughtQuantity: it.BoughtQuantity,
			UnitPrice:      it.UnitPrice,
		})
	}

	order := entities.Order{
		Items:       items,
		UserAddress: entities.Address(req.UserAddress),
	}
	if req.CreatedOn != nil {
		order.CreatedOn = *req.CreatedOn
	}
	return order
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:      it.ProductID,
			BoughtQuantity: it.BoughtQuantity,
		})
	}

	return Order{
		ID:          o.ID,
		CreatedOn:   o.CreatedOn,
		Items:       items,
		UserAddress: Address(o.UserAddress),
		TotalAmount: o.TotalAmount,
	}
}
