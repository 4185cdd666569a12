package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
)

type ProductRepo interface {
	Insert(ctx context.Context, product entities.Product) (entities.Product, error)

	// List возвращает страницу товаров и общее число записей, попавших под фильтр.
	List(ctx context.Context, filter entities.ProductFilter, limit, offset int) ([]entities.Product, int, error)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewProductService(logger *slog.Logger, repo ProductRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

func (s *productService) Create(ctx context.Context, product entities.Product) (entities.Product, error) {
	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.DebugContext(ctx, "product created",
		slog.String("product_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

func (s *productService) List(ctx context.Context, limit, offset int, filter entities.ProductFilter) (entities.ProductPage, error) {
	products, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return entities.ProductPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	page := entities.ProductPage{
		Products: products,
		Limit:    limit,
		Total:    total,
	}
	if next := offset + limit; next < total {
		page.NextOffset = &next
	}
	if prev := offset - limit; prev >= 0 {
		page.PrevOffset = &prev
	}
	return page, nil
}
