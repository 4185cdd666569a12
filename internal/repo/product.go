package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type productRepo struct {
	col *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *productRepo {
	return &productRepo{col: db.Collection("products")}
}

func (r *productRepo) Insert(ctx context.Context, product entities.Product) (entities.Product, error) {
	res, err := r.col.InsertOne(ctx, ProductFromEntity(product))
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return entities.Product{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	product.ID = oid.Hex()
	return product, nil
}

func (r *productRepo) GetByID(ctx context.Context, productID string) (entities.Product, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: productID}
	}

	var doc Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to find product: %w", err)
	}
	return ProductToEntity(doc), nil
}

// DecrementQuantity атомарно списывает остаток: фильтр quantity >= n гарантирует,
// что остаток не уйдёт в минус даже при конкурентных заказах.
func (r *productRepo) DecrementQuantity(ctx context.Context, productID string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		// Идентификатор, который невозможно распарсить, не указывает ни на один товар.
		return &entities.ProductNotFoundError{ProductID: productID}
	}

	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": quantity}}
	update := bson.M{"$inc": bson.M{"quantity": -quantity}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement quantity: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Фильтр не совпал: либо товара нет, либо остатков не хватает.
	if _, err := r.GetByID(ctx, productID); err != nil {
		return err
	}
	return &entities.InsufficientStockError{ProductID: productID}
}

type productFacet struct {
	Data  []Product `bson:"data"`
	Count []struct {
		Total int `bson:"total"`
	} `bson:"count"`
}

// List выполняет фильтрацию, пагинацию и подсчёт одним запросом через $facet.
func (r *productRepo) List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]entities.Product, int, error) {
	match := bson.M{}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		match["price"] = price
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$facet", Value: bson.M{
			"data": bson.A{
				bson.M{"$skip": offset},
				bson.M{"$limit": limit},
			},
			"count": bson.A{
				bson.M{"$count": "total"},
			},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	var facets []productFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}
	if len(facets) == 0 {
		return []entities.Product{}, 0, nil
	}

	facet := facets[0]
	products := make([]entities.Product, 0, len(facet.Data))
	for _, doc := range facet.Data {
		products = append(products, ProductToEntity(doc))
	}

	total := 0
	if len(facet.Count) > 0 {
		total = facet.Count[0].Total
	}
	return products, total, nil
}
