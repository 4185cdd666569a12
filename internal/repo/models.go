package repo

import (
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Price    float64            `bson:"price"`
	Quantity int                `bson:"quantity"`
}

type Address struct {
	City    string `bson:"city"`
	Country string `bson:"country"`
	ZipCode string `bson:"zipCode"`
}

type OrderItem struct {
	ProductID      string  `bson:"productId"`
	BoughtQuantity int     `bson:"boughtQuantity"`
	UnitPrice      float64 `bson:"unitPrice"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatedOn   time.Time          `bson:"createdOn"`
	Items       []OrderItem        `bson:"items"`
	UserAddress Address            `bson:"userAddress"`
	TotalAmount float64            `bson:"totalAmount"`
}

func ProductFromEntity(p entities.Product) Product {
	return Product{
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID.Hex(),
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func OrderFromEntity(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:      it.ProductID,
			BoughtQuantity: it.BoughtQuantity,
			UnitPrice:      it.UnitPrice,
		})
	}

	return Order{
		CreatedOn:   o.CreatedOn,
		Items:       items,
		UserAddress: Address(o.UserAddress),
		TotalAmount: o.TotalAmount,
	}
}

func OrderToEntity(o Order) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.OrderItem{
			ProductID:      it.ProductID,
			BoughtQuantity: it.BoughtQuantity,
			UnitPrice:      it.UnitPrice,
		})
	}

	return entities.Order{
		ID:          o.ID.Hex(),
		CreatedOn:   o.CreatedOn,
		Items:       items,
		UserAddress: entities.Address(o.UserAddress),
		TotalAmount: o.TotalAmount,
	}
}
