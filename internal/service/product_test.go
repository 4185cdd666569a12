package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/service"
	mocks "github.com/SergeyBogomolovv/ecommerce-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		product      entities.Product
		mockBehavior func(repo *mocks.MockProductRepo)
		want         entities.Product
		wantErr      error
	}{
		{
			name:    "success",
			product: entities.Product{Name: "Keyboard", Price: 49.99, Quantity: 10},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().Insert(mock.Anything, entities.Product{Name: "Keyboard", Price: 49.99, Quantity: 10}).
					Return(entities.Product{ID: "p1", Name: "Keyboard", Price: 49.99, Quantity: 10}, nil).Once()
			},
			want: entities.Product{ID: "p1", Name: "Keyboard", Price: 49.99, Quantity: 10},
		},
		{
			name:    "repo error",
			product: entities.Product{Name: "Keyboard", Price: 49.99, Quantity: 10},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(entities.Product{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewProductService(logger, repo)

			created, err := svc.Create(context.Background(), tc.product)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, created)
		})
	}
}

func TestProductService_List(t *testing.T) {
	dbError := errors.New("db error")

	makeProducts := func(n int) []entities.Product {
		products := make([]entities.Product, n)
		for i := range products {
			products[i] = entities.Product{ID: "p", Name: "item", Price: 1, Quantity: 1}
		}
		return products
	}
	intPtr := func(v int) *int { return &v }

	testCases := []struct {
		name         string
		limit        int
		offset       int
		filter       entities.ProductFilter
		mockBehavior func(repo *mocks.MockProductRepo)
		want         entities.ProductPage
		wantErr      error
	}{
		{
			name:   "first page has no prev offset",
			limit:  10,
			offset: 0,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().List(mock.Anything, entities.ProductFilter{}, 10, 0).
					Return(makeProducts(10), 25, nil).Once()
			},
			want: entities.ProductPage{
				Products:   makeProducts(10),
				Limit:      10,
				Total:      25,
				NextOffset: intPtr(10),
			},
		},
		{
			name:   "middle page has both offsets",
			limit:  10,
			offset: 10,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().List(mock.Anything, entities.ProductFilter{}, 10, 10).
					Return(makeProducts(10), 25, nil).Once()
			},
			want: entities.ProductPage{
				Products:   makeProducts(10),
				Limit:      10,
				Total:      25,
				NextOffset: intPtr(20),
				PrevOffset: intPtr(0),
			},
		},
		{
			name:   "last page has no next offset",
			limit:  10,
			offset: 20,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().List(mock.Anything, entities.ProductFilter{}, 10, 20).
					Return(makeProducts(5), 25, nil).Once()
			},
			want: entities.ProductPage{
				Products:   makeProducts(5),
				Limit:      10,
				Total:      25,
				PrevOffset: intPtr(10),
			},
		},
		{
			name:   "empty result",
			limit:  10,
			offset: 0,
			filter: entities.ProductFilter{MinPrice: floatPtr(100)},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().List(mock.Anything, entities.ProductFilter{MinPrice: floatPtr(100)}, 10, 0).
					Return([]entities.Product{}, 0, nil).Once()
			},
			want: entities.ProductPage{
				Products: []entities.Product{},
				Limit:    10,
				Total:    0,
			},
		},
		{
			name:   "repo error",
			limit:  10,
			offset: 0,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().List(mock.Anything, entities.ProductFilter{}, 10, 0).
					Return(nil, 0, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewProductService(logger, repo)

			page, err := svc.List(context.Background(), tc.limit, tc.offset, tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, page)
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
