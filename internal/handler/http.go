package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
	"github.com/SergeyBogomolovv/ecommerce-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type ProductService interface {
	Create(ctx context.Context, product entities.Product) (entities.Product, error)
	List(ctx context.Context, limit, offset int, filter entities.ProductFilter) (entities.ProductPage, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	products ProductService
	orders   OrderService
}

func NewHTTPHandler(logger *slog.Logger, products ProductService, orders OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		products: products,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/products/add-product/", h.AddProduct)
	r.Get("/products/products/", h.ListProducts)
	r.Post("/orders/create-order/", h.CreateOrder)
}

// AddProduct добавляет товар в каталог.
// @Summary      Добавить товар
// @Description  Создаёт товар и возвращает его с присвоенным идентификатором
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      ProductCreateRequest  true  "Данные товара"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/add-product/ [post]
func (h *HTTPHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductCreateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.products.Create(ctx, ProductCreateToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		h.writeUnexpectedError(w, err)
		return
	}

	productsCreated.Inc()
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// ListProducts возвращает страницу товаров.
// @Summary      Список товаров
// @Description  Возвращает товары с пагинацией и фильтром по цене
// @Tags         products
// @Produce      json
// @Param        limit      query  int     false  "Размер страницы (1-100)"  default(10)
// @Param        offset     query  int     false  "Сколько записей пропустить"  default(0)
// @Param        min_price  query  number  false  "Минимальная цена"
// @Param        max_price  query  number  false  "Максимальная цена"
// @Success      200  {object}  ProductList
// @Failure      400  {object}  utils.ErrorResponse "Неверные параметры запроса"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/products/ [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := intQuery(r, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		utils.WriteError(w, "limit must be an integer between 1 and 100", http.StatusBadRequest)
		return
	}
	offset, err := intQuery(r, "offset", 0)
	if err != nil || offset < 0 {
		utils.WriteError(w, "offset must be a non-negative integer", http.StatusBadRequest)
		return
	}

	var filter entities.ProductFilter
	filter.MinPrice, err = floatQuery(r, "min_price")
	if err != nil {
		utils.WriteError(w, "min_price must be a number", http.StatusBadRequest)
		return
	}
	filter.MaxPrice, err = floatQuery(r, "max_price")
	if err != nil {
		utils.WriteError(w, "max_price must be a number", http.StatusBadRequest)
		return
	}

	page, err := h.products.List(ctx, limit, offset, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		h.writeUnexpectedError(w, err)
		return
	}

	utils.WriteJSON(w, ProductPageToJSON(page), http.StatusOK)
}

// CreateOrder создаёт заказ и списывает остатки товаров.
// @Summary      Создать заказ
// @Description  Списывает остатки по каждой позиции и сохраняет заказ с посчитанной суммой
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      OrderCreateRequest  true  "Данные заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Недостаточно остатков"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/create-order/ [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderCreateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, OrderCreateToEntity(req))
	if err != nil {
		var notFound *entities.ProductNotFoundError
		if errors.As(err, &notFound) {
			ordersRejected.WithLabelValues("product_not_found").Inc()
			utils.WriteError(w, notFound.Error(), http.StatusNotFound)
			return
		}

		var noStock *entities.InsufficientStockError
		if errors.As(err, &noStock) {
			ordersRejected.WithLabelValues("insufficient_stock").Inc()
			utils.WriteError(w, noStock.Error(), http.StatusBadRequest)
			return
		}

		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		h.writeUnexpectedError(w, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Текст внутренней ошибки намеренно отдаётся клиенту.
func (h *HTTPHandler) writeUnexpectedError(w http.ResponseWriter, err error) {
	utils.WriteError(w, "internal server error: "+err.Error(), http.StatusInternalServerError)
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func floatQuery(r *http.Request, key string) (*float64, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
