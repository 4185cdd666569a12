package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type orderRepo struct {
	col *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *orderRepo {
	return &orderRepo{col: db.Collection("orders")}
}

func (r *orderRepo) Insert(ctx context.Context, order entities.Order) (entities.Order, error) {
	res, err := r.col.InsertOne(ctx, OrderFromEntity(order))
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return entities.Order{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	order.ID = oid.Hex()
	return order, nil
}
