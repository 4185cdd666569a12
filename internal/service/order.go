package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
)

type OrderRepo interface {
	Insert(ctx context.Context, order entities.Order) (entities.Order, error)
}

type StockRepo interface {
	// DecrementQuantity списывает остаток атомарно и возвращает
	// ProductNotFoundError либо InsufficientStockError, если списать нельзя.
	DecrementQuantity(ctx context.Context, productID string, quantity int) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order) error
}

type orderService struct {
	logger    *slog.Logger
	orders    OrderRepo
	stock     StockRepo
	publisher OrderPublisher
}

func NewOrderService(logger *slog.Logger, orders OrderRepo, stock StockRepo, publisher OrderPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		orders:    orders,
		stock:     stock,
		publisher: publisher,
	}
}

// CreateOrder списывает остатки по позициям строго в порядке их следования и
// сохраняет заказ только после того, как все списания прошли. Уже применённые
// списания при ошибке на следующей позиции не откатываются — компенсаций
// и межпозиционной транзакции здесь нет намеренно.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if order.CreatedOn.IsZero() {
		order.CreatedOn = time.Now().UTC()
	}

	var total float64
	for _, item := range order.Items {
		total += float64(item.BoughtQuantity) * item.UnitPrice
	}
	order.TotalAmount = total

	for _, item := range order.Items {
		if err := s.stock.DecrementQuantity(ctx, item.ProductID, item.BoughtQuantity); err != nil {
			return entities.Order{}, fmt.Errorf("failed to reserve stock: %w", err)
		}
	}

	created, err := s.orders.Insert(ctx, order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID),
		slog.Int("items", len(created.Items)),
		slog.Float64("total_amount", created.TotalAmount),
	)

	// Событие вторично по отношению к заказу: ошибку публикации только логируем.
	if err := s.publisher.PublishOrderCreated(ctx, created); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order created event",
			slog.String("order_id", created.ID),
			slog.Any("error", err),
		)
	}

	return created, nil
}
