package entities

import "time"

type Address struct {
	City    string
	Country string
	ZipCode string
}

type OrderItem struct {
	ProductID      string
	BoughtQuantity int
	// UnitPrice приходит от клиента и не сверяется с каталогом,
	// итог заказа считается именно по ней.
	UnitPrice float64
}

type Order struct {
	ID          string
	CreatedOn   time.Time
	Items       []OrderItem
	UserAddress Address
	TotalAmount float64
}
